package lists

type CreateListRequest struct {
	ManhwaNames     []string `json:"manhwa_names" validate:"required,min=1"`
	ListTitle       string   `json:"list_title" validate:"required,max=200"`
	ListDescription string   `json:"list_description" validate:"max=2000"`
}

type CreateListFromTextRequest struct {
	Text string `json:"text" validate:"required,max=8000"`
}

type CreateListResponse struct {
	ListID int64 `json:"list_id"`
}
