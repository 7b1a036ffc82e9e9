package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ilomad/portfolio-assistant/internal/domain"
	"github.com/ilomad/portfolio-assistant/internal/telemetry"
)

const (
	defaultCallTimeout   = 8 * time.Second
	defaultContextChunks = 5

	// Templated-fallback context is capped to keep the deterministic answer
	// readable.
	fallbackContextMaxChars = 500
)

// ChatClient completes a question against supplied context.
type ChatClient interface {
	Complete(ctx context.Context, system, contextBlock, question string) (string, error)
}

// ChatSource resolves the chat client on every call, mirroring
// EmbedderSource: credential changes apply without restart, nil means the
// capability is not configured.
type ChatSource interface {
	Chat() ChatClient
}

// Responder orchestrates the full answer pipeline: canned intercepts for
// recognized intents, semantic-then-keyword retrieval, external generation,
// and the deterministic templated fallback beneath it. It never lets an
// internal failure escape; only input validation surfaces as an error.
type Responder struct {
	semantic    *SemanticSearcher
	keyword     *KeywordSearcher
	chats       ChatSource
	bank        *ResponseBank
	callTimeout time.Duration
	topK        int
}

// ResponderConfig wires the responder's collaborators.
type ResponderConfig struct {
	Semantic *SemanticSearcher
	Keyword  *KeywordSearcher
	Chat     ChatSource
	Bank     *ResponseBank

	// CallTimeout bounds each outbound call; zero means the default.
	CallTimeout time.Duration
	// ContextChunks is the retrieval top-k; zero means the default.
	ContextChunks int
}

// NewResponder creates a responder from the given configuration.
func NewResponder(cfg ResponderConfig) *Responder {
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	topK := cfg.ContextChunks
	if topK <= 0 {
		topK = defaultContextChunks
	}
	return &Responder{
		semantic:    cfg.Semantic,
		keyword:     cfg.Keyword,
		chats:       cfg.Chat,
		bank:        cfg.Bank,
		callTimeout: timeout,
		topK:        topK,
	}
}

// AnswerInput is one user question. Language is the caller-declared reply
// language; when invalid or absent the detected language applies.
type AnswerInput struct {
	Message  string
	Language domain.Language
}

// AnswerOutput carries the final answer plus the resolved language and
// recognized intent for logging.
type AnswerOutput struct {
	Response string
	Language domain.Language
	Intent   domain.Intent
}

// Answer resolves a question through the tiered fallback chain. The only
// error it returns is input validation; every downstream failure degrades to
// the next strategy, ending at the generic unknown string.
func (r *Responder) Answer(ctx context.Context, input AnswerInput) (out *AnswerOutput, err error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	lang := input.Language
	if !lang.Valid() {
		lang = DetectLanguage(message)
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("responder recovered from panic: %v", rec)
			telemetry.CaptureError(ctx, fmt.Errorf("responder panic: %v", rec))
			out = &AnswerOutput{Response: r.bank.Unknown(lang), Language: lang}
			err = nil
		}
	}()

	ctx, span := telemetry.StartSpan(ctx, "responder.answer", telemetry.SpanAttributes{
		Language:  string(lang),
		Operation: "answer",
	})
	defer span.End()

	cls := ClassifyIntent(message)
	if cls.Recognized() {
		replyLang := lang
		// Follow-ups and aptitude questions defeat fresh detection (a lone
		// "et"/"and"/"ary" carries no signal), so they answer in the
		// caller's session language, defaulting to French without one.
		if cls.Intent == domain.IntentFollowUp || cls.Intent == domain.IntentCapabilities {
			replyLang = domain.DefaultLanguage
			if input.Language.Valid() {
				replyLang = input.Language
			}
		}
		return &AnswerOutput{
			Response: CleanResponse(r.bank.Canned(cls.Intent, replyLang)),
			Language: replyLang,
			Intent:   cls.Intent,
		}, nil
	}

	contextBlock := r.retrieveContext(ctx, message)
	if strings.TrimSpace(contextBlock) == "" {
		// Empty corpus: the one path with nothing to assemble from.
		return &AnswerOutput{Response: r.bank.Unknown(lang), Language: lang}, nil
	}

	if reply, ok := r.generate(ctx, lang, contextBlock, message); ok {
		return &AnswerOutput{Response: CleanResponse(reply), Language: lang}, nil
	}

	templated := r.templatedAnswer(message, lang, contextBlock)
	return &AnswerOutput{Response: CleanResponse(templated), Language: lang}, nil
}

func (r *Responder) retrieveContext(ctx context.Context, question string) string {
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	block, err := r.semantic.Search(callCtx, question, r.topK)
	if err != nil {
		// Search degrades internally; an error here still must not stop the
		// chain.
		log.Printf("context retrieval failed: %v", err)
		return r.keyword.Context(question, r.topK)
	}
	return block
}

func (r *Responder) generate(ctx context.Context, lang domain.Language, contextBlock, question string) (string, bool) {
	if r.chats == nil {
		return "", false
	}
	chat := r.chats.Chat()
	if chat == nil {
		// No credentials configured: expected degradation, not logged.
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	reply, err := chat.Complete(callCtx, systemInstructions(lang), contextBlock, question)
	if err != nil {
		log.Printf("chat completion failed, using templated fallback: %v", err)
		telemetry.CaptureError(ctx, err)
		return "", false
	}
	if strings.TrimSpace(reply) == "" {
		return "", false
	}
	return reply, true
}

// templatedAnswer assembles a deterministic answer from the retrieved
// context: a category-specific prefix plus the context truncated to 500
// characters with an ellipsis marker.
func (r *Responder) templatedAnswer(question string, lang domain.Language, contextBlock string) string {
	block := strings.TrimSpace(contextBlock)
	if block == "" {
		return r.bank.Unknown(lang)
	}
	if len(block) > fallbackContextMaxChars {
		// Walk back to a rune start so the cut never splits a multibyte
		// character.
		cut := fallbackContextMaxChars
		for cut > 0 && !utf8.RuneStart(block[cut]) {
			cut--
		}
		block = block[:cut] + "..."
	}

	prefix := r.bank.Prefix(fallbackCategory(question), lang)
	if prefix == "" {
		return block
	}
	return prefix + "\n\n" + block
}

var (
	contactVocabRe    = regexp.MustCompile(`(contact|email|mail|telephone|phone|joindre|reach|adresse|antso)`)
	projectsVocabRe   = regexp.MustCompile(`(projets?|projects?|realisations?|travaux|tetikasa)`)
	experienceDocRe   = regexp.MustCompile(`(experiences?|annees?|\bans\b|years?|carriere|traikefa)`)
	langDirectivesMap = map[domain.Language]string{
		domain.LanguageFrench:   "Réponds TOUJOURS en français. Utilise un langage professionnel, naturel et amical.",
		domain.LanguageEnglish:  "Answer ALWAYS in English. Use professional, natural and friendly language.",
		domain.LanguageMalagasy: "Mamaly FOANA amin'ny fiteny malagasy. Ampiasao ny fiteny malagasy tsotra sy mahalala fomba.",
	}
)

func fallbackCategory(question string) string {
	normalized := Normalize(question)
	switch {
	case contactVocabRe.MatchString(normalized):
		return CategoryContact
	case projectsVocabRe.MatchString(normalized):
		return CategoryProjects
	case experienceDocRe.MatchString(normalized):
		return CategoryExperience
	default:
		return CategoryDefault
	}
}

func systemInstructions(lang domain.Language) string {
	directive, ok := langDirectivesMap[lang]
	if !ok {
		directive = langDirectivesMap[domain.DefaultLanguage]
	}
	return fmt.Sprintf(`You are the assistant for Sarobidy FIFALIANTSOA's portfolio website.

%s

Rules:
- Use ONLY the information from the supplied portfolio context; cite technologies, projects and dates exactly as the context states them.
- If the requested information is not in the context, say so plainly instead of inventing an answer.
- Be concise. Use bullet points (•) when listing several items.
- Do not repeat generic greetings.`, directive)
}

var (
	headingMarkRe = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	boldMarkRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicMarkRe  = regexp.MustCompile(`\*(.+?)\*`)
	codeMarkRe    = regexp.MustCompile("`(.+?)`")
	bulletMarkRe  = regexp.MustCompile(`(?m)^-\s+`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanResponse strips residual markdown emphasis, heading and code markers,
// rewrites leading list dashes to bullets, and collapses runs of three or
// more newlines to exactly two. It is a no-op on plain text.
func CleanResponse(s string) string {
	s = headingMarkRe.ReplaceAllString(s, "")
	s = boldMarkRe.ReplaceAllString(s, "$1")
	s = italicMarkRe.ReplaceAllString(s, "$1")
	s = codeMarkRe.ReplaceAllString(s, "$1")
	s = bulletMarkRe.ReplaceAllString(s, "• ")
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
