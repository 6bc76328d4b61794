package httperror

type Error struct {
	Message string `json:"error" example:"Transaction not found"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
