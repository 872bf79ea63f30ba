package auth

import (
	"fmt"
	"strings"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/pkg/security"
)

// Mailer puerto de despacho de correo para la recuperación de contraseña.
type Mailer interface {
	Send(to, subject, body string) error
}

const tempPasswordLen = 8

// RecoverPassword restablece la contraseña de un usuario ubicado por DNI:
// genera una contraseña temporal aleatoria, guarda su hash y despacha la
// temporal en claro al email registrado. Si el correo falla, la contraseña ya
// quedó cambiada; el resultado lo refleja en MailSent para que la interfaz
// pueda mostrarla por pantalla como alternativa.
func (uc *UseCase) RecoverPassword(dni string) (*dto.RecoveryResult, error) {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return nil, domain.ErrMissingField
	}

	user, err := uc.users.FindByDNI(dni)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Msg("recuperación fallida: DNI no registrado")
		return nil, domain.ErrUserNotFound
	}

	temp, err := security.GeneratePassword(tempPasswordLen)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(temp)
	if err != nil {
		return nil, err
	}
	if err := uc.users.UpdatePassword(user.Email, hash); err != nil {
		return nil, err
	}

	result := &dto.RecoveryResult{Email: user.Email, TempPassword: temp}
	if uc.mailer != nil {
		body := fmt.Sprintf(
			"Hola %s:\n\nTu contraseña de ORDICO fue restablecida. Contraseña temporal: %s\n\nIniciá sesión y cambiala desde tu perfil.",
			user.Username, temp,
		)
		if err := uc.mailer.Send(user.Email, "Recuperación de contraseña - ORDICO", body); err != nil {
			uc.log.Error().Err(err).Msg("no se pudo enviar el correo de recuperación")
		} else {
			result.MailSent = true
		}
	}

	uc.log.Info().Str("username", user.Username).Bool("correo", result.MailSent).Msg("contraseña restablecida por DNI")
	return result, nil
}
