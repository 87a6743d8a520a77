package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"barberflow/config"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const maxVoiceNoteSize = 5 * 1024 * 1024 // 5MB

// Transcriber converts a WhatsApp voice note into text.
type Transcriber interface {
	TranscribeURL(ctx context.Context, mediaURL string) (string, error)
}

// GoogleTranscriber downloads the voice note and runs it through Google
// Speech-to-Text. WhatsApp voice notes arrive as OGG/Opus.
type GoogleTranscriber struct {
	// MediaUser/MediaPass authenticate the media download (Twilio media
	// URLs require the account credentials).
	MediaUser string
	MediaPass string
	Language  string
	Client    *http.Client
}

// NewGoogleTranscriber creates a transcriber for Turkish voice notes.
func NewGoogleTranscriber(mediaUser, mediaPass string) *GoogleTranscriber {
	return &GoogleTranscriber{
		MediaUser: mediaUser,
		MediaPass: mediaPass,
		Language:  "tr-TR",
		Client:    &http.Client{Timeout: 20 * time.Second},
	}
}

func (t *GoogleTranscriber) TranscribeURL(ctx context.Context, mediaURL string) (string, error) {
	audio, err := t.download(ctx, mediaURL)
	if err != nil {
		return "", err
	}

	var opts []option.ClientOption
	if config.AppConfig.GoogleAPIKey != "" {
		opts = append(opts, option.WithAPIKey(config.AppConfig.GoogleAPIKey))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_OGG_OPUS,
			SampleRateHertz:   16000,
			LanguageCode:      t.Language,
			AudioChannelCount: 1, // Mono
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audio,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}

func (t *GoogleTranscriber) download(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build media request: %w", err)
	}
	if t.MediaUser != "" {
		req.SetBasicAuth(t.MediaUser, t.MediaPass)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxVoiceNoteSize))
}

var _ Transcriber = (*GoogleTranscriber)(nil)
