/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package notifier publishes drain outcomes to an operator channel.
// Notification is best-effort: failures are logged by the caller and never
// fail the invocation.
package notifier

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/slack-go/slack"
)

// Summary describes the outcome of one handled interruption.
type Summary struct {
	InstanceID string
	Account    string
	Region     string
	Drained    []string
	Failed     []string
	Capacity   string
}

// Notifier publishes a drain summary.
type Notifier interface {
	Notify(ctx context.Context, summary Summary) error
}

// SlackNotifier posts summaries to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewSlackNotifier creates a SlackNotifier for the given webhook URL. The
// underlying HTTP client retries transient failures.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: rc.StandardClient(),
	}
}

// Notify posts the summary as a single webhook message.
func (n *SlackNotifier) Notify(ctx context.Context, summary Summary) error {
	msg := &slack.WebhookMessage{
		Text: render(summary),
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	return nil
}

func render(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spot instance %s in account %s (%s) is being reclaimed.\n", s.InstanceID, s.Account, s.Region)

	switch {
	case len(s.Drained) == 0 && len(s.Failed) == 0:
		b.WriteString("No load balancer referenced the instance.\n")
	default:
		if len(s.Drained) > 0 {
			fmt.Fprintf(&b, "Drained from: %s\n", strings.Join(s.Drained, ", "))
		}
		if len(s.Failed) > 0 {
			fmt.Fprintf(&b, "Deregistration failed for: %s\n", strings.Join(s.Failed, ", "))
		}
	}

	if s.Capacity != "" {
		fmt.Fprintf(&b, "Capacity: %s", s.Capacity)
	}

	return b.String()
}
