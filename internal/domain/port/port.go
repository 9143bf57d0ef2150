package port

// Clock supplies the current instant. Injected so services can be tested
// with a fixed time instead of range assertions.
type Clock interface {
	NowMillis() int64
}

// IDGenerator supplies collision-resistant opaque tokens, used as
// certification codes.
type IDGenerator interface {
	Random() string
}

// MailSender delivers a message asynchronously. Send returns before
// delivery completes and delivery failures are not reported back.
type MailSender interface {
	Send(to, subject, body string)
}
