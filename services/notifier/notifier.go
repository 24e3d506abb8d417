package notifier

// Notifier delivers the outcome message of a scraping run to the surrounding
// application. The message is transient state: the consumer reads it once and
// discards it.
type Notifier interface {
	// Notify publishes a run outcome message
	Notify(message string) error

	// Close closes the notifier connection
	Close() error
}
