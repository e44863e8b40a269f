package Slack

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// PostComplianceSummary posts the daily compliance summary to the
// configured channel. A missing token or channel simply disables the
// integration without erroring out the caller's schedule.
func PostComplianceSummary(text string) error {
	token := os.Getenv("SLACK_BOT_TOKEN")
	channelID := os.Getenv("SLACK_CHANNEL_ID")
	if token == "" || channelID == "" {
		return nil
	}

	api := slack.New(token)
	_, _, err := api.PostMessage(channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("error posting to Slack channel %s: %w", channelID, err)
	}
	return nil
}
