package internal

import (
	"github.com/Maycoooz/DD-bot/internal/service"
	"github.com/Maycoooz/DD-bot/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB    *gorm.DB
	Argon *security.ArgonHash
	Mail  *service.MailQueue
}
