package notification

import (
	"context"
	"fmt"

	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits multicast requests to 500 tokens.
const maxTokensPerBatch = 500

type firebasePushService struct {
	client *messaging.Client
}

// NewFirebasePushService creates a new Firebase push service instance
func NewFirebasePushService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebasePushService{
		client: client,
	}, nil
}

// SendSinglePush sends a push notification to a single device token
func (s *firebasePushService) SendSinglePush(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}

	return nil
}

// SendBatchPush sends push notifications to multiple device tokens, chunking
// into multicast requests of at most 500 tokens each.
func (s *firebasePushService) SendBatchPush(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += maxTokensPerBatch {
		end := min(start+maxTokensPerBatch, len(tokens))
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return successCount, failureCount, invalidTokens, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		// Collect invalid tokens
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil {
				// Check if error is due to invalid or unregistered token
				if messaging.IsInvalidArgument(sendResponse.Error) ||
					messaging.IsUnregistered(sendResponse.Error) {
					invalidTokens = append(invalidTokens, batch[idx])
				}
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
