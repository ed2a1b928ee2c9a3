package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contractbot/internal/domain"
	"contractbot/internal/errors"
	"contractbot/internal/storage"
)

// Generator renders a completed record into the deliverable document.
type Generator interface {
	Render(ctx context.Context, record domain.OrderRecord, profile domain.CompanyProfile) (*domain.RenderedDocument, error)
}

// Registry resolves company keys offered by the /company_* commands.
type Registry interface {
	Lookup(key domain.CompanyKey) (domain.CompanyProfile, error)
	Keys() []domain.CompanyKey
}

// Result is the machine's answer to one inbound message: a reply text and,
// when generation succeeded, the document to deliver.
type Result struct {
	Reply    string
	Document *domain.RenderedDocument
}

// step maps a waiting state to the field it collects and the state that
// follows.
type step struct {
	field domain.Field
	next  domain.State
}

// The dialogue is strictly linear: company selection enters at the date
// state and each accepted value advances one step.
var steps = map[domain.State]step{
	domain.StateDate:           {domain.FieldDate, domain.StateContractNumber},
	domain.StateContractNumber: {domain.FieldContractNumber, domain.StateFirstName},
	domain.StateFirstName:      {domain.FieldFirstName, domain.StateLastName},
	domain.StateLastName:       {domain.FieldLastName, domain.StateMiddleName},
	domain.StateMiddleName:     {domain.FieldMiddleName, domain.StatePhone},
	domain.StatePhone:          {domain.FieldPhone, domain.StateAddress},
	domain.StateAddress:        {domain.FieldAddress, domain.StateOrderedItem},
	domain.StateOrderedItem:    {domain.FieldOrderedItem, domain.StateQuantity},
	domain.StateQuantity:       {domain.FieldQuantity, domain.StateCost},
	domain.StateCost:           {domain.FieldCost, domain.StateSbpPhone},
	domain.StateSbpPhone:       {domain.FieldSbpPhone, domain.StateSbpFullName},
	domain.StateSbpFullName:    {domain.FieldSbpFullName, domain.StateSbpBank},
	domain.StateSbpBank:        {domain.FieldSbpBank, domain.StateComplete},
}

// Machine drives one conversation's form dialogue. It is safe for use from
// multiple goroutines as long as each conversation's messages are handled
// serially, which the transport guarantees.
type Machine struct {
	store     storage.Store
	registry  Registry
	generator Generator
	logger    *zap.Logger
}

func NewMachine(store storage.Store, registry Registry, generator Generator, logger *zap.Logger) *Machine {
	return &Machine{
		store:     store,
		registry:  registry,
		generator: generator,
		logger:    logger,
	}
}

// Handle processes one inbound message. Command-prefixed input bypasses
// field validation in any state; everything else is treated as the answer
// to the current prompt.
func (m *Machine) Handle(ctx context.Context, conversationID int64, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "/") {
		return m.handleCommand(ctx, conversationID, text)
	}
	return m.handleFieldInput(ctx, conversationID, text)
}

func (m *Machine) handleCommand(ctx context.Context, conversationID int64, text string) (Result, error) {
	command := strings.Fields(text)[0]
	// Group chats address commands as /start@botname.
	if at := strings.IndexByte(command, '@'); at >= 0 {
		command = command[:at]
	}
	command = strings.TrimPrefix(command, "/")

	switch {
	case command == "start":
		if err := m.store.Clear(ctx, conversationID); err != nil {
			return Result{}, err
		}
		return Result{Reply: m.menuText()}, nil

	case command == "clear_context":
		if err := m.store.Clear(ctx, conversationID); err != nil {
			return Result{}, err
		}
		return Result{Reply: msgContextCleared}, nil

	case command == "retry":
		return m.retry(ctx, conversationID)

	case strings.HasPrefix(command, "company_"):
		return m.selectCompany(ctx, conversationID, domain.CompanyKey(strings.TrimPrefix(command, "company_")))

	default:
		return Result{Reply: msgUnknownCommand + "\n\n" + m.menuText()}, nil
	}
}

// selectCompany starts a fresh record for the chosen company; any partial
// data from a previous dialogue is discarded.
func (m *Machine) selectCompany(ctx context.Context, conversationID int64, key domain.CompanyKey) (Result, error) {
	if _, err := m.registry.Lookup(key); err != nil {
		return Result{Reply: msgUnknownCommand + "\n\n" + m.menuText()}, nil
	}

	session := storage.Session{
		State:  domain.StateDate,
		Record: domain.OrderRecord{CompanyKey: key},
	}
	if err := m.store.Set(ctx, conversationID, session); err != nil {
		return Result{}, err
	}

	m.logger.Info("company selected",
		zap.Int64("conversationId", conversationID),
		zap.String("company", string(key)))
	return Result{Reply: fmt.Sprintf("Выбрана компания: %s\n\n%s", key, prompts[domain.StateDate])}, nil
}

func (m *Machine) handleFieldInput(ctx context.Context, conversationID int64, text string) (Result, error) {
	session, err := m.store.Get(ctx, conversationID)
	if err != nil {
		return Result{}, err
	}
	if session == nil || session.State == domain.StateIdle {
		return Result{Reply: m.menuText()}, nil
	}
	if session.State == domain.StateComplete {
		// Dialogue finished but generation failed earlier; only /retry or
		// /start make sense here.
		return Result{Reply: msgGenerationFailed}, nil
	}

	current, ok := steps[session.State]
	if !ok {
		if err := m.store.Clear(ctx, conversationID); err != nil {
			return Result{}, err
		}
		return Result{Reply: m.menuText()}, nil
	}

	if err := session.Record.Apply(current.field, text); err != nil {
		if ve, ok := errors.IsValidationError(err); ok {
			m.logger.Debug("field rejected",
				zap.Int64("conversationId", conversationID),
				zap.String("field", ve.Field),
				zap.String("reason", ve.Message))
			return Result{Reply: fmt.Sprintf("Поле %q: %s", ve.Field, ve.Message)}, nil
		}
		return Result{}, err
	}

	session.State = current.next
	if err := m.store.Set(ctx, conversationID, *session); err != nil {
		return Result{}, err
	}

	if current.next == domain.StateComplete {
		return m.generate(ctx, conversationID, session)
	}
	return Result{Reply: prompts[current.next]}, nil
}

// retry re-attempts generation with the preserved record, without
// re-entering any field.
func (m *Machine) retry(ctx context.Context, conversationID int64) (Result, error) {
	session, err := m.store.Get(ctx, conversationID)
	if err != nil {
		return Result{}, err
	}
	if session == nil {
		return Result{Reply: m.menuText()}, nil
	}
	return m.generate(ctx, conversationID, session)
}

func (m *Machine) generate(ctx context.Context, conversationID int64, session *storage.Session) (Result, error) {
	if err := session.Record.Validate(); err != nil {
		return Result{Reply: msgIncompleteRecord}, nil
	}

	profile, err := m.registry.Lookup(session.Record.CompanyKey)
	if err != nil {
		// Registered commands are the only way to set a company key, so an
		// unknown key is a configuration fault, not user input.
		return Result{}, err
	}

	renderID := uuid.NewString()
	m.logger.Info("generating document",
		zap.String("renderId", renderID),
		zap.Int64("conversationId", conversationID),
		zap.String("company", string(profile.Key)),
		zap.String("contractNumber", session.Record.ContractNumber))

	doc, err := m.generator.Render(ctx, session.Record, profile)
	if err != nil {
		m.logger.Error("document generation failed",
			zap.String("renderId", renderID),
			zap.Int64("conversationId", conversationID),
			zap.Error(err))
		// The record stays in the store so /retry can reuse it.
		return Result{Reply: msgGenerationFailed}, nil
	}

	if err := m.store.Clear(ctx, conversationID); err != nil {
		return Result{}, err
	}

	m.logger.Info("document generated",
		zap.String("renderId", renderID),
		zap.Int64("conversationId", conversationID),
		zap.String("document", doc.Name),
		zap.Int("sizeBytes", len(doc.Data)))
	return Result{Reply: msgGenerated, Document: doc}, nil
}

func (m *Machine) menuText() string {
	var b strings.Builder
	b.WriteString("Меню\n")
	b.WriteString("/start - Меню. Сбросить состояние\n")
	for _, key := range m.registry.Keys() {
		profile, err := m.registry.Lookup(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "/company_%s - %s\n", key, profile.Name)
	}
	b.WriteString("/retry - Еще раз")
	return b.String()
}
