package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
)

// Flujo de recuperación de contraseña.
//
// Máquina de estados por código: sin reset pendiente → código emitido → consumido,
// o código emitido → vencido (por tiempo). Una nueva solicitud sobreescribe el
// código pendiente (gana el último). El código se anula SOLO al consumirse en
// ResetPassword; VerifyCode no lo limpia, así una verificación exitosa no puede
// quedar invalidada por una carrera entre verificación y consumo.

// RequestReset emite un código de 6 dígitos con vencimiento corto y lo envía por
// correo. El código se persiste únicamente después de confirmado el envío: si el
// envío falla no queda estado a medio emitir.
func (uc *AuthUseCase) RequestReset(identifier string) error {
	if identifier == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(identifier)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	expires := time.Now().Add(uc.codeTTL)

	if err := uc.mailer.SendResetCode(user.Email, user.Username, code); err != nil {
		return domain.ErrMailDispatch
	}
	return uc.userRepo.SetResetCode(user.ID, code, expires)
}

// VerifyCode valida que el código coincida y no esté vencido. Devuelve el token
// para el paso de reset (el propio código). No consume el código.
func (uc *AuthUseCase) VerifyCode(username, code string) (string, error) {
	if username == "" || code == "" {
		return "", domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil || user.ResetCode == nil || user.ResetCodeExpires == nil {
		return "", domain.ErrInvalidOrExpiredCode
	}
	if *user.ResetCode != code || !user.ResetCodeExpires.After(time.Now()) {
		return "", domain.ErrInvalidOrExpiredCode
	}
	return code, nil
}

// ResetPassword re-valida código y vencimiento de forma independiente del paso de
// verificación (dos compuertas encadenadas) y, en una sola sentencia, fija el nuevo
// hash y anula código+vencimiento. El código queda consumido: un segundo intento
// con el mismo código falla.
func (uc *AuthUseCase) ResetPassword(code, newPassword string) error {
	if code == "" || newPassword == "" {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ok, err := uc.userRepo.ConsumePasswordReset(code, string(hash))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidOrExpiredCode
	}
	return nil
}

// generateResetCode devuelve un código numérico uniforme en [100000, 999999].
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generar código: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
