package auth

// Mailer colaborador externo de envío de correo. El flujo de recuperación solo
// persiste el código si el envío fue confirmado.
type Mailer interface {
	SendResetCode(to, username, code string) error
}
