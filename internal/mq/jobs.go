package mq

import (
	"context"
	"encoding/json"
)

// ChannelResetMail is the queue carrying password-reset mail jobs from
// the API server to the mail worker.
const ChannelResetMail = "reset-mail"

// ResetMailJob asks the mail worker to send a password-reset link.
type ResetMailJob struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ResetToken string `json:"resetToken"`
}

// PublishResetMail enqueues a password-reset mail job.
func (m *MQ) PublishResetMail(ctx context.Context, job ResetMailJob) (string, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return "", err
	}
	return m.Publish(ctx, ChannelResetMail, data, map[string]string{"kind": "reset-mail"})
}

// SubscribeResetMail consumes password-reset mail jobs, decoding each
// payload before handing it to the handler.
func (m *MQ) SubscribeResetMail(ctx context.Context, handle func(ctx context.Context, job ResetMailJob) error) error {
	return m.Subscribe(ctx, ChannelResetMail, func(ctx context.Context, msg Message) error {
		var job ResetMailJob
		if err := json.Unmarshal(msg.Data, &job); err != nil {
			return err
		}
		return handle(ctx, job)
	})
}
