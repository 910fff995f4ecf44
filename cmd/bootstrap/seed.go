package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"library-circulation/internal/domain/member"
	"library-circulation/internal/pkg/config"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdminMember),
)

// SeedAdminMember makes sure the configured admin account exists before the
// server starts taking requests. A second start against the same database is
// a no-op.
func SeedAdminMember(lc fx.Lifecycle, members *commands.MemberCommands, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := members.Register(ctx, shared.Actor{Email: "system"}, commands.RegisterMemberInput{
				Name:     cfg.Admin.Name,
				Email:    cfg.Admin.Email,
				Password: cfg.Admin.Password,
				Role:     member.RoleAdmin.String(),
			})
			if err != nil {
				if errors.Is(err, commands.ErrDuplicateEmail) {
					logger.Debug("admin member already seeded", "email", cfg.Admin.Email)
					return nil
				}
				return err
			}
			logger.Info("admin member seeded", "email", cfg.Admin.Email)
			return nil
		},
	})
}
