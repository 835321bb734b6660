package email

// Provider определяет интерфейс для отправки email.
// Все уведомления best-effort: ошибки отправки логируются и не
// прерывают вызвавшую операцию.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
