package internal

import (
	"alaayoubi/content-api/config"
	"alaayoubi/content-api/internal/service"
	"alaayoubi/content-api/pkg/security"
)

type Deps struct {
	Cfg    *config.Config
	Tokens *security.TokenManager
	Auth   *service.AuthService
	Posts  *service.PostService
}
