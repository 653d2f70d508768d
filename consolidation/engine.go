package consolidation

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"catalogserver/catalog"
)

// Config конфигурация движка консолидации. Передается при конструировании,
// после этого движок не держит никакого изменяемого состояния процесса.
type Config struct {
	// SizeTokens словарь размерных суффиксов в порядке приоритета
	SizeTokens []string
	// UnknownRank сторожевой ранг нераспознанных размеров
	UnknownRank int
	// IdentityMode правило идентичности семейства: name или sku
	IdentityMode IdentityMode
	// Policy политика отбора по статусу/видимости
	Policy OnlinePolicy
	// Exclusions операционный денилист базовых SKU, может быть nil
	Exclusions map[string]struct{}
	// Synthesizer параметры синтеза родительских записей
	Synthesizer SynthesizerConfig
}

// DefaultConfig конфигурация по умолчанию: словарь и соглашения Magento-каталога
func DefaultConfig() Config {
	return Config{
		SizeTokens:   DefaultSizeTokens,
		UnknownRank:  DefaultUnknownRank,
		IdentityMode: IdentityByName,
		Policy:       DefaultOnlinePolicy(),
		Synthesizer:  DefaultSynthesizerConfig(),
	}
}

// Counters счетчики запуска для диагностики и истории
type Counters struct {
	TotalRecords  int `json:"total_records"`
	Configurables int `json:"configurables"`
	AssignedSKUs  int `json:"assigned_skus"`
	Eligible      int `json:"eligible"`
	Families      int `json:"families"`
	Singles       int `json:"singles"`
	Parents       int `json:"parents"`
}

// Result результат одного запуска. Пустые коллекции — валидный исход,
/// а не ошибка: ноль подходящих вариантов дает пустые таблицы и счетчики.
type Result struct {
	Eligible []UnlinkedVariant
	Families []VariantFamily
	Singles  []UnlinkedVariant
	Parents  []SynthesizedParent
	Index    AssignmentIndex
	// Flags нарушения инвариантов, замеченные по ходу запуска
	// (неоднозначный выбор шаблона). Не прерывают запуск.
	Flags    []string
	Stats    Counters
	Duration time.Duration
}

// AssignedSKUs возвращает SKU индекса привязок отсортированным списком
// для детерминированной диагностической таблицы
func (r *Result) AssignedSKUs() []string {
	skus := make([]string, 0, len(r.Index))
	for sku := range r.Index {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}

// Engine движок консолидации вариантов: один синхронный проход по
// неизменяемому снимку каталога, стадии 1→6 по порядку, исходный снимок
// никогда не мутируется.
type Engine struct {
	config      Config
	vocab       *SizeVocabulary
	normalizer  *Normalizer
	filter      *EligibilityFilter
	synthesizer *Synthesizer
}

// NewEngine создает движок по конфигурации
func NewEngine(config Config) (*Engine, error) {
	vocab, err := NewSizeVocabulary(config.SizeTokens, config.UnknownRank)
	if err != nil {
		return nil, fmt.Errorf("failed to build size vocabulary: %w", err)
	}
	if config.IdentityMode == "" {
		config.IdentityMode = IdentityByName
	}
	if !config.IdentityMode.Valid() {
		return nil, fmt.Errorf("unknown identity mode %q", config.IdentityMode)
	}

	normalizer := NewNormalizer(vocab)
	return &Engine{
		config:      config,
		vocab:       vocab,
		normalizer:  normalizer,
		filter:      NewEligibilityFilter(normalizer, vocab, config.Synthesizer.ParentPrefix, config.Policy, config.Exclusions),
		synthesizer: NewSynthesizer(config.Synthesizer),
	}, nil
}

// Normalizer возвращает нормализатор движка (для отчетов и диагностики)
func (e *Engine) Normalizer() *Normalizer {
	return e.normalizer
}

// Vocabulary возвращает словарь размеров движка
func (e *Engine) Vocabulary() *SizeVocabulary {
	return e.vocab
}

// Run выполняет полный конвейер консолидации над снимком. Ошибки формы
// входа фатальны и возвращаются до запуска стадий; аномалии отдельных
// записей поглощаются на границах стадий и в ошибку не превращаются.
func (e *Engine) Run(snapshot *catalog.Snapshot) (*Result, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot rejected: %w", err)
	}

	start := time.Now()

	index := BuildAssignmentIndex(snapshot.Records)
	eligible := e.filter.FilterEligible(snapshot, index)

	families, singles, err := GroupFamilies(eligible, e.config.IdentityMode)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Eligible: eligible,
		Families: families,
		Singles:  singles,
		Index:    index,
	}

	for i := range families {
		family := &families[i]
		template, err := SelectTemplate(family)
		if err != nil {
			// Нарушение инварианта помечается и не роняет остальные семейства
			slog.Warn("canonical selection failed",
				"identity", family.Identity,
				"error", err,
			)
			result.Flags = append(result.Flags, err.Error())
			continue
		}
		result.Parents = append(result.Parents, e.synthesizer.Synthesize(family, template))
	}

	result.Stats = Counters{
		TotalRecords:  len(snapshot.Records),
		Configurables: len(snapshot.Configurables()),
		AssignedSKUs:  len(index),
		Eligible:      len(eligible),
		Families:      len(families),
		Singles:       len(singles),
		Parents:       len(result.Parents),
	}
	result.Duration = time.Since(start)

	slog.Info("consolidation run finished",
		"records", result.Stats.TotalRecords,
		"eligible", result.Stats.Eligible,
		"families", result.Stats.Families,
		"parents", result.Stats.Parents,
		"duration", result.Duration,
	)
	return result, nil
}
