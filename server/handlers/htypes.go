package handlers

type RequestUserRegister struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RequestUserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseUserLogin struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

type RequestTodoCreate struct {
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// RequestTodoUpdate uses pointers so an omitted field can be told apart from
// an explicit empty string; omitted fields keep their stored value.
type RequestTodoUpdate struct {
	Text     *string `json:"text"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
}
