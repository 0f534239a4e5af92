package dto

// LoginReq represents user login request
type LoginReq struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

// RegisterReq represents user registration request
type RegisterReq struct {
	Username string `json:"username" binding:"required,username"`
	Password string `json:"password" binding:"required,password"`
}

// UserInfo is the public view of a user
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// LoginResp carries the signed token plus the authenticated identity
type LoginResp struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// LogoutResp is always returned with status 200; LoggedOut reports whether a
// valid session was actually terminated.
type LogoutResp struct {
	Message   string `json:"message"`
	LoggedOut bool   `json:"loggedOut"`
}
