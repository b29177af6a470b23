package nlp

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type analyzer struct {
	backend IBackend
	log     *logrus.Logger
}

func NewAnalyzer(backend IBackend, log *logrus.Logger) IAnalyzer {
	return &analyzer{
		backend: backend,
		log:     log,
	}
}

// Analyze asks the backend to classify the transcript and parses its reply,
// structured first and by labelled lines second. Any error leaves the
// fallback decision to the caller.
func (a *analyzer) Analyze(ctx context.Context, transcript, languageName string, snapshot ContextSnapshot) (IntentResult, error) {
	prompt := BuildIntentPrompt(transcript, languageName, snapshot)

	raw, err := a.backend.Complete(ctx, prompt)
	if err != nil {
		return IntentResult{}, fmt.Errorf("%s completion: %w", a.backend.Name(), err)
	}

	result, err := ParseStructured(raw)
	if err == nil {
		return result, nil
	}

	a.log.WithFields(logrus.Fields{
		"backend": a.backend.Name(),
		"error":   err.Error(),
	}).Debug("structured intent parse failed, trying labelled lines")

	result, err = ParseByPattern(raw, transcript)
	if err != nil {
		a.log.WithFields(logrus.Fields{
			"backend":  a.backend.Name(),
			"response": raw,
		}).Warn("nlu response could not be parsed")
		return IntentResult{}, err
	}

	return result, nil
}
