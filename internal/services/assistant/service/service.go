// Package service implements the assistant orchestrator. One request is
// one forward pass: detect language, classify intent, enhance entities
// from context, either ask for clarification or dispatch the operation,
// format the reply and synthesize audio for it
package service

import (
	"context"
	"strings"

	"talktobank/internal/core/kb"
	"talktobank/internal/core/langdetect"
	"talktobank/internal/core/nlp"
	"talktobank/internal/core/respond"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/platform/logger"
	"talktobank/internal/services/assistant/domain"
	bankdomain "talktobank/internal/services/banking/domain"
	convodomain "talktobank/internal/services/convo/domain"
	speechdomain "talktobank/internal/services/speech/domain"
)

// audioRoute is where stored clips are served from
const audioRoute = "/api/v1/audio/"

// Service implements domain.AssistantPort
type Service struct {
	Classifier *nlp.Classifier
	Store      convodomain.StorePort
	Bank       bankdomain.BankingPort
	TTS        speechdomain.TTSPort
	Audio      speechdomain.AudioStorePort
	Format     *respond.Formatter
}

// New constructs the orchestrator over its collaborator ports
func New(
	cls *nlp.Classifier,
	store convodomain.StorePort,
	bank bankdomain.BankingPort,
	tts speechdomain.TTSPort,
	audio speechdomain.AudioStorePort,
	format *respond.Formatter,
) *Service {
	return &Service{
		Classifier: cls,
		Store:      store,
		Bank:       bank,
		TTS:        tts,
		Audio:      audio,
		Format:     format,
	}
}

// Process implements domain.AssistantPort
func (s *Service) Process(ctx context.Context, userID int64, text string, respLang langdetect.Lang) (domain.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Reply{}, perrs.InvalidArgf("no text provided")
	}

	detected := langdetect.Detect(text)
	s.Store.SetLanguage(userID, detected)
	if !respLang.Valid() {
		respLang = detected
	}

	res := s.Classifier.Analyze(text, detected)
	entities := s.Store.EnhanceFromContext(userID, res.Intent, res.Entities)

	logger.C(ctx).Debug().
		Str("intent", string(res.Intent)).
		Str("detected_lang", string(detected)).
		Str("resp_lang", string(respLang)).
		Msg("utterance analyzed")

	if need, question := convodomain.NeedsClarification(res.Intent, entities); need {
		// Clarification questions are written in English; other reply
		// languages get the generic localized prompt
		if respLang != langdetect.LangEnglish {
			question = s.Format.Clarification(respLang)
		}
		s.Store.AddMessage(userID, convodomain.RoleUser, text, res.Intent, entities)
		s.Store.AddMessage(userID, convodomain.RoleAssistant, question, res.Intent, entities)
		return domain.Reply{
			Text:               question,
			Intent:             res.Intent,
			Language:           respLang,
			NeedsClarification: true,
			AudioURL:           s.synthesize(ctx, question, respLang),
			Data:               map[string]any{},
		}, nil
	}

	replyText, data, completed := s.dispatch(ctx, userID, res.Intent, entities, respLang)

	s.Store.AddMessage(userID, convodomain.RoleUser, text, res.Intent, entities)
	s.Store.AddMessage(userID, convodomain.RoleAssistant, replyText, res.Intent, entities)

	// clearing after the turn is recorded, so AddMessage cannot re-merge
	// the consumed entities into the pending set
	if completed {
		s.Store.ClearPending(userID)
	}

	return domain.Reply{
		Text:     replyText,
		Intent:   res.Intent,
		Language: respLang,
		AudioURL: s.synthesize(ctx, replyText, respLang),
		Data:     data,
	}, nil
}

// dispatch runs the banking operation for transactional intents and falls
// back to the knowledge base for everything else. Collaborator failures
// become the localized error reply, never a transport error. completed is
// true only when a multi-turn operation finished and its pending entities
// are safe to drop
func (s *Service) dispatch(ctx context.Context, userID int64, intent nlp.Intent, e nlp.Entities, lang langdetect.Lang) (text string, data any, completed bool) {
	switch intent {
	case nlp.IntentCheckBalance:
		bal, err := s.Bank.CheckBalance(ctx, userID, string(e.AccountType))
		if err != nil {
			return s.opError(ctx, intent, err, lang)
		}
		return s.Format.Balance(lang, bal.AccountType, bal.Amount), bal, false

	case nlp.IntentTransferFunds:
		// amount and recipient are present, the clarification gate ran
		result, err := s.Bank.Transfer(ctx, userID, *e.Recipient, *e.Amount)
		if err != nil {
			return s.opError(ctx, intent, err, lang)
		}
		return s.Format.TransferSuccess(lang, result.Amount, result.Recipient), result, true

	case nlp.IntentTransactionHistory:
		limit := 0
		if e.Limit != nil {
			limit = *e.Limit
		}
		txns, err := s.Bank.History(ctx, userID, limit)
		if err != nil {
			return s.opError(ctx, intent, err, lang)
		}
		if len(txns) == 0 {
			return s.Format.NoTransactions(lang), map[string]any{"transactions": txns}, false
		}
		return s.Format.Transactions(lang, len(txns)), map[string]any{"transactions": txns}, false

	case nlp.IntentLoanDetails:
		loans, err := s.Bank.Loans(ctx, userID)
		if err != nil {
			return s.opError(ctx, intent, err, lang)
		}
		if len(loans) == 0 {
			return s.Format.NoLoans(lang), map[string]any{"loans": loans}, false
		}
		first := loans[0]
		return s.Format.LoanSummary(lang, first.Amount, first.InterestRate, first.DueDate),
			map[string]any{"loans": loans}, false

	case nlp.IntentSetReminder:
		due := ""
		if e.ReminderDate != nil {
			due = *e.ReminderDate
		}
		rem, err := s.Bank.SetReminder(ctx, userID, *e.ReminderMessage, due)
		if err != nil {
			return s.opError(ctx, intent, err, lang)
		}
		return s.Format.ReminderSet(lang, rem.Message, due), rem, false

	default:
		answer := kb.Lookup(intent, lang)
		return answer.Response, map[string]any{"tips": answer.Tips}, false
	}
}

func (s *Service) opError(ctx context.Context, intent nlp.Intent, err error, lang langdetect.Lang) (string, any, bool) {
	logger.C(ctx).Warn().Err(err).Str("intent", string(intent)).Msg("operation failed")
	return s.Format.Error(lang), map[string]any{}, false
}

// synthesize stores the spoken reply and returns its URL. Synthesis
// failure degrades to a text-only reply
func (s *Service) synthesize(ctx context.Context, text string, lang langdetect.Lang) string {
	clip, err := s.TTS.Synthesize(ctx, text, lang)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("tts synthesis failed")
		return ""
	}
	s.Audio.Put(clip)
	return audioRoute + clip.ID
}
