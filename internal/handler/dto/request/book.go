package request

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn" binding:"required"`
	TotalCopies int    `json:"total_copies" binding:"required,min=1"`
}

type UpdateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn" binding:"required"`
	TotalCopies int    `json:"total_copies" binding:"required,min=1"`
}
