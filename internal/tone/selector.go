// Package tone maps a client's age and status to the pair of
// tone-of-voice instruction fragments used by the prompt assembler.
package tone

import "github.com/aidyn-dev/banking-notification-service/internal/domain"

// Config holds the age bracket thresholds. These are business decisions and
// come from configuration, not code.
type Config struct {
	// YouthMaxAge is the exclusive upper bound of the youth bracket.
	YouthMaxAge int
	// SeniorMinAge is the inclusive lower bound of the senior bracket.
	SeniorMinAge int
}

func DefaultConfig() Config {
	return Config{YouthMaxAge: 25, SeniorMinAge: 55}
}

const (
	ageToneYouth   = "Обращайся к клиенту на «ты», пиши легко и неформально, без канцелярита и сложных финансовых терминов."
	ageToneMiddle  = "Обращайся к клиенту на «вы» (со строчной буквы), пиши дружелюбно и по делу."
	ageToneSenior  = "Обращайся к клиенту на «вы», пиши спокойно и уважительно, без сленга и англицизмов."
	ageToneNeutral = "Обращайся к клиенту на «вы», нейтрально и вежливо."

	statusToneNeutral = "Держи нейтральный вежливый тон."
)

var statusTones = map[string]string{
	domain.StatusStudent:  "Допустим лёгкий неформальный тон, простые слова, без финансового жаргона.",
	domain.StatusSalaried: "Держи нейтрально-дружелюбный тон, опирайся на конкретные цифры трат клиента.",
	domain.StatusPremium:  "Держи подчёркнуто уважительный, сдержанный тон, без восклицаний и давления.",
	domain.StatusStandard: "Держи нейтральный вежливый тон без лишних деталей.",
}

// Selector derives tone instructions from fixed category tables. It is
// stateless apart from the configured thresholds.
type Selector struct {
	cfg Config
}

func NewSelector(cfg Config) *Selector {
	// Nonsensical thresholds (unset, inverted) fall back to the defaults
	// rather than producing a degenerate bracket table.
	if cfg.YouthMaxAge <= 0 || cfg.SeniorMinAge <= cfg.YouthMaxAge {
		cfg = DefaultConfig()
	}
	return &Selector{cfg: cfg}
}

// Select returns the tone instruction pair for the given age and status.
// Out-of-range ages and unknown statuses select the neutral fragments;
// Select never fails and never returns an empty fragment.
func (s *Selector) Select(age int, status string) domain.ToneInstruction {
	instruction := domain.ToneInstruction{
		AgeTone:    s.ageTone(age),
		StatusTone: statusToneNeutral,
	}
	if t, ok := statusTones[status]; ok {
		instruction.StatusTone = t
	}
	return instruction
}

func (s *Selector) ageTone(age int) string {
	switch {
	case age <= 0 || age > 120:
		return ageToneNeutral
	case age < s.cfg.YouthMaxAge:
		return ageToneYouth
	case age >= s.cfg.SeniorMinAge:
		return ageToneSenior
	default:
		return ageToneMiddle
	}
}
