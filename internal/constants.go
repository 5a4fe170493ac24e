package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "cb_access_token"
	COOKIE_USER_NAME         = "cb_user"
	COOKIE_REDIRECT_NAME     = "cb_redirect_to"
)
