// Package queue defines message payloads exchanged over the message broker
// and the consumer that drains them.
package queue

// PaymentQueueName is the durable queue payment requests are published to.
const PaymentQueueName = "ticket.payment.requested"

// PaymentRequestedEvent is published once per accepted ticket purchase.  It
// carries everything the payment processor needs to charge the account.
type PaymentRequestedEvent struct {
	AccountID   int64  `json:"account_id"`
	Amount      int    `json:"amount"`
	RequestedAt string `json:"requested_at"`
}
