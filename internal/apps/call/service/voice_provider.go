package service

import (
	"fmt"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client/jwt"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
)

// CallResult describes a call accepted by the telephony provider
type CallResult struct {
	SID    string
	Status string
}

// VoiceProvider defines the interface for the telephony provider's voice API
type VoiceProvider interface {
	// AccessToken creates a client SDK token allowing the identity to place
	// and receive calls.
	AccessToken(identity string) (string, error)
	// MakeCall places a call from the service number; call control is fetched
	// from twimlURL.
	MakeCall(toPhoneNumber, twimlURL string) (*CallResult, error)
	// ConnectTwiML renders a call-control document that greets the caller and
	// streams audio to the given websocket URL.
	ConnectTwiML(streamURL string) (string, error)
}

// noOpVoiceProvider fakes the voice API (for local environment)
type noOpVoiceProvider struct{}

func (n *noOpVoiceProvider) AccessToken(identity string) (string, error) {
	fmt.Printf("[Voice NoOp] Issuing fake access token for %s\n", identity)
	return "noop-voice-token", nil
}

func (n *noOpVoiceProvider) MakeCall(toPhoneNumber, twimlURL string) (*CallResult, error) {
	fmt.Printf("[Voice NoOp] Skipping call to %s (twiml %s)\n", toPhoneNumber, twimlURL)
	return &CallResult{SID: "noop-call", Status: "queued"}, nil
}

func (n *noOpVoiceProvider) ConnectTwiML(streamURL string) (string, error) {
	return "<Response></Response>", nil
}

// NewNoOpVoiceProvider creates a no-op voice provider
func NewNoOpVoiceProvider() VoiceProvider {
	return &noOpVoiceProvider{}
}

// TwilioVoiceConfig holds the credentials for the Twilio voice provider
type TwilioVoiceConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
	APIKey      string
	APISecret   string
	TTSVoice    string
}

// twilioVoiceProvider implements VoiceProvider on the Twilio REST API
type twilioVoiceProvider struct {
	client *twilio.RestClient
	config TwilioVoiceConfig
}

// NewTwilioVoiceProvider creates a Twilio voice provider
func NewTwilioVoiceProvider(config TwilioVoiceConfig) VoiceProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSID,
		Password: config.AuthToken,
	})
	return &twilioVoiceProvider{client: client, config: config}
}

func (t *twilioVoiceProvider) AccessToken(identity string) (string, error) {
	token := jwt.CreateAccessToken(jwt.AccessTokenParams{
		AccountSid:    t.config.AccountSID,
		SigningKeySid: t.config.APIKey,
		Secret:        t.config.APISecret,
		Identity:      identity,
	})
	token.AddGrant(&jwt.VoiceGrant{
		Incoming: jwt.Incoming{Allow: true},
		Outgoing: jwt.Outgoing{ApplicationSid: t.config.AccountSID},
	})

	signed, err := token.ToJwt()
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return signed, nil
}

func (t *twilioVoiceProvider) MakeCall(toPhoneNumber, twimlURL string) (*CallResult, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(toPhoneNumber)
	params.SetFrom(t.config.PhoneNumber)
	params.SetUrl(twimlURL)

	resp, err := t.client.Api.CreateCall(params)
	if err != nil {
		return nil, fmt.Errorf("failed to make outgoing call: %w", err)
	}

	result := &CallResult{}
	if resp.Sid != nil {
		result.SID = *resp.Sid
	}
	if resp.Status != nil {
		result.Status = *resp.Status
	}
	return result, nil
}

func (t *twilioVoiceProvider) ConnectTwiML(streamURL string) (string, error) {
	say := &twiml.VoiceSay{
		Message: "Connecting you to your Second Brain A I assistant.",
		Voice:   t.config.TTSVoice,
	}
	connect := &twiml.VoiceConnect{
		InnerElements: []twiml.Element{
			&twiml.VoiceStream{Url: streamURL},
		},
	}

	doc, err := twiml.Voice([]twiml.Element{say, connect})
	if err != nil {
		return "", fmt.Errorf("failed to render twiml: %w", err)
	}
	return doc, nil
}
