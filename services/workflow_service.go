package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/store"
)

// DraftStage tags how far a draft has progressed through the wizard.
type DraftStage string

const (
	StageMeasurements DraftStage = "measurements"
	StageSelection    DraftStage = "selection"
	StagePreview      DraftStage = "preview"
	StageSubmit       DraftStage = "submit"
)

// Draft is the in-progress, not-yet-submitted state of the design wizard.
// It is discarded, not hidden, once an order is created from it.
type Draft struct {
	Stage            DraftStage          `json:"stage"`
	Measurements     models.Measurements `json:"measurements"`
	SelectedFabrics  []models.Fabric     `json:"selectedFabrics"`
	SelectedDesign   *models.Design      `json:"selectedDesign,omitempty"`
	GeneratedDesigns []string            `json:"generatedDesigns"`
	FinalChoice      int                 `json:"finalChoice"`
}

// Workflow drives the four-stage design wizard and the post-submission
// status state machine. It holds one draft per customer.
type Workflow struct {
	store    *store.Store
	renderer Renderer
	images   ImageStore

	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewWorkflow wires the workflow to the entity store and its
// collaborators.
func NewWorkflow(st *store.Store, renderer Renderer, images ImageStore) *Workflow {
	return &Workflow{
		store:    st,
		renderer: renderer,
		images:   images,
		drafts:   make(map[string]*Draft),
	}
}

// StartDraft begins a fresh draft for the user, replacing any existing
// one.
func (w *Workflow) StartDraft(userID string) Draft {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft := &Draft{
		Stage:       StageMeasurements,
		FinalChoice: -1,
	}
	w.drafts[userID] = draft
	return copyDraft(draft)
}

// Draft returns a copy of the user's current draft, if any.
func (w *Workflow) Draft(userID string) (Draft, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, ok := w.drafts[userID]
	if !ok {
		return Draft{}, false
	}
	return copyDraft(draft), true
}

// DiscardDraft drops the user's draft without submitting it.
func (w *Workflow) DiscardDraft(userID string) {
	w.mu.Lock()
	delete(w.drafts, userID)
	w.mu.Unlock()
}

// SetMeasurements records the measurements stage. Numeric fields must be
// non-negative.
func (w *Workflow) SetMeasurements(userID string, m models.Measurements) (Draft, error) {
	if err := m.Validate(); err != nil {
		return Draft{}, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	draft, err := w.draftLocked(userID)
	if err != nil {
		return Draft{}, err
	}
	draft.Measurements = m
	if draft.Stage == StageMeasurements {
		draft.Stage = StageSelection
	}
	return copyDraft(draft), nil
}

// ToggleFabric adds the fabric to the selection, or removes it when
// already selected. At most three fabrics may be selected.
func (w *Workflow) ToggleFabric(userID string, fabric models.Fabric) (Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, err := w.draftLocked(userID)
	if err != nil {
		return Draft{}, err
	}

	for i, f := range draft.SelectedFabrics {
		if f.ID == fabric.ID {
			draft.SelectedFabrics = append(draft.SelectedFabrics[:i], draft.SelectedFabrics[i+1:]...)
			return copyDraft(draft), nil
		}
	}
	if len(draft.SelectedFabrics) >= 3 {
		return Draft{}, fmt.Errorf("%w: at most 3 fabrics may be selected", ErrConstraintViolation)
	}
	draft.SelectedFabrics = append(draft.SelectedFabrics, fabric)
	return copyDraft(draft), nil
}

// SelectDesign records the design style for the draft.
func (w *Workflow) SelectDesign(userID string, design models.Design) (Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, err := w.draftLocked(userID)
	if err != nil {
		return Draft{}, err
	}
	d := design
	draft.SelectedDesign = &d
	return copyDraft(draft), nil
}

// GeneratePreviews advances from the selection stage by rendering one
// image per view angle. All renders run concurrently and the stage waits
// for every outcome before deciding: on any failure the whole stage fails
// (the first error is reported) and the draft is left unchanged.
func (w *Workflow) GeneratePreviews(ctx context.Context, userID string) (Draft, error) {
	w.mu.Lock()
	draft, err := w.draftLocked(userID)
	if err != nil {
		w.mu.Unlock()
		return Draft{}, err
	}
	if len(draft.SelectedFabrics) == 0 || len(draft.SelectedFabrics) > 3 {
		w.mu.Unlock()
		return Draft{}, fmt.Errorf("%w: select between 1 and 3 fabrics", ErrConstraintViolation)
	}
	if draft.SelectedDesign == nil {
		w.mu.Unlock()
		return Draft{}, fmt.Errorf("%w: select a design style", ErrConstraintViolation)
	}
	measurements := draft.Measurements
	fabrics := append([]models.Fabric(nil), draft.SelectedFabrics...)
	design := *draft.SelectedDesign
	w.mu.Unlock()

	// Renders run outside the lock; the draft is only touched again once
	// every angle has succeeded.
	results := make([]string, len(ViewAngles))
	errs := make([]error, len(ViewAngles))

	var wg sync.WaitGroup
	for i, angle := range ViewAngles {
		wg.Add(1)
		go func(i int, angle string) {
			defer wg.Done()
			prompt := BuildViewPrompt(angle, measurements, fabrics, design)
			results[i], errs[i] = w.renderer.Generate(ctx, prompt)
		}(i, angle)
	}
	wg.Wait()

	for i, genErr := range errs {
		if genErr != nil {
			return Draft{}, fmt.Errorf("%w: %s view: %v", ErrCollaboratorFailure, ViewAngles[i], genErr)
		}
	}

	stored := make([]string, len(results))
	for i, img := range results {
		url, storeErr := w.images.StoreImage(ctx, img)
		if storeErr != nil {
			return Draft{}, fmt.Errorf("%w: storing %s view: %v", ErrCollaboratorFailure, ViewAngles[i], storeErr)
		}
		stored[i] = url
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	draft, err = w.draftLocked(userID)
	if err != nil {
		return Draft{}, err
	}
	draft.GeneratedDesigns = stored
	draft.FinalChoice = -1
	draft.Stage = StagePreview
	return copyDraft(draft), nil
}

// EditPreview applies a free-text instruction to one preview slot,
// replacing it in place on success. Failures are reported per image and
// leave the sibling previews untouched.
func (w *Workflow) EditPreview(ctx context.Context, userID string, index int, instruction string) (Draft, error) {
	w.mu.Lock()
	draft, err := w.draftLocked(userID)
	if err != nil {
		w.mu.Unlock()
		return Draft{}, err
	}
	if draft.Stage != StagePreview {
		w.mu.Unlock()
		return Draft{}, fmt.Errorf("%w: no previews to edit yet", ErrConstraintViolation)
	}
	if index < 0 || index >= len(draft.GeneratedDesigns) {
		w.mu.Unlock()
		return Draft{}, fmt.Errorf("%w: preview index %d out of range", ErrConstraintViolation, index)
	}
	current := draft.GeneratedDesigns[index]
	w.mu.Unlock()

	edited, err := w.renderer.Edit(ctx, current, instruction)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: editing preview %d: %v", ErrCollaboratorFailure, index, err)
	}
	url, err := w.images.StoreImage(ctx, edited)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: storing edited preview %d: %v", ErrCollaboratorFailure, index, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	draft, err = w.draftLocked(userID)
	if err != nil {
		return Draft{}, err
	}
	if index >= len(draft.GeneratedDesigns) {
		return Draft{}, fmt.Errorf("%w: preview index %d out of range", ErrConstraintViolation, index)
	}
	draft.GeneratedDesigns[index] = url
	return copyDraft(draft), nil
}

// ChooseFinal marks one preview as the customer's final choice.
func (w *Workflow) ChooseFinal(userID string, index int) (Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, err := w.draftLocked(userID)
	if err != nil {
		return Draft{}, err
	}
	if draft.Stage != StagePreview {
		return Draft{}, fmt.Errorf("%w: generate previews first", ErrConstraintViolation)
	}
	if index < 0 || index >= len(draft.GeneratedDesigns) {
		return Draft{}, fmt.Errorf("%w: preview index %d out of range", ErrConstraintViolation, index)
	}
	draft.FinalChoice = index
	draft.Stage = StageSubmit
	return copyDraft(draft), nil
}

// Submit creates the order from the draft: measurements, fabric and
// design snapshots, every generated preview and the final choice, with
// status pending and the seed status update. The draft is discarded on
// success.
func (w *Workflow) Submit(userID string) (models.Order, error) {
	w.mu.Lock()
	draft, err := w.draftLocked(userID)
	if err != nil {
		w.mu.Unlock()
		return models.Order{}, err
	}
	if draft.FinalChoice < 0 || draft.FinalChoice >= len(draft.GeneratedDesigns) {
		w.mu.Unlock()
		return models.Order{}, fmt.Errorf("%w: pick a final design before submitting", ErrConstraintViolation)
	}
	if draft.SelectedDesign == nil || len(draft.SelectedFabrics) == 0 {
		w.mu.Unlock()
		return models.Order{}, fmt.Errorf("%w: draft is missing selections", ErrConstraintViolation)
	}

	now := time.Now().UTC()
	order := models.Order{
		UserID:           userID,
		Measurements:     draft.Measurements,
		SelectedFabrics:  append([]models.Fabric(nil), draft.SelectedFabrics...),
		SelectedDesign:   *draft.SelectedDesign,
		GeneratedDesigns: append([]string(nil), draft.GeneratedDesigns...),
		FinalChoiceURL:   draft.GeneratedDesigns[draft.FinalChoice],
		Status:           models.StatusPending,
		CreatedAt:        now,
		StatusUpdates: []models.StatusUpdate{
			{Message: models.InitialStatusMessage, Timestamp: now},
		},
	}
	w.mu.Unlock()

	created, err := w.store.AddOrder(order)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	w.mu.Lock()
	delete(w.drafts, userID)
	w.mu.Unlock()
	return created, nil
}

// UpdateOrderStatus walks the staff-driven status state machine:
// pending→approved|denied, approved→in_progress, in_progress→completed.
// Out-of-order transitions are rejected. Each valid transition appends
// exactly one status update with its fixed message.
func (w *Workflow) UpdateOrderStatus(orderID string, next models.OrderStatus) (models.Order, error) {
	order, ok := w.store.GetOrder(orderID)
	if !ok {
		return models.Order{}, store.ErrNotFound
	}

	message, allowed := order.Status.TransitionTo(next)
	if !allowed {
		return models.Order{}, fmt.Errorf("%w: cannot move order from %s to %s", ErrConstraintViolation, order.Status, next)
	}

	order.Status = next
	order.StatusUpdates = append(order.StatusUpdates, models.StatusUpdate{
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	if err := w.store.UpdateOrder(order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateOrderDetails replaces an order's measurements and snapshots while
// preserving its identity, owner, status and status history.
func (w *Workflow) UpdateOrderDetails(updated models.Order) (models.Order, error) {
	existing, ok := w.store.GetOrder(updated.ID)
	if !ok {
		return models.Order{}, store.ErrNotFound
	}

	if err := updated.Measurements.Validate(); err != nil {
		return models.Order{}, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	if n := len(updated.SelectedFabrics); n < 1 || n > 3 {
		return models.Order{}, fmt.Errorf("%w: orders carry between 1 and 3 fabrics", ErrConstraintViolation)
	}

	updated.UserID = existing.UserID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt
	updated.StatusUpdates = existing.StatusUpdates
	if updated.GeneratedDesigns == nil {
		updated.GeneratedDesigns = existing.GeneratedDesigns
	}
	if updated.FinalChoiceURL == "" {
		updated.FinalChoiceURL = existing.FinalChoiceURL
	}
	if err := w.store.UpdateOrder(updated); err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

// draftLocked returns the live draft for the user; callers hold w.mu.
func (w *Workflow) draftLocked(userID string) (*Draft, error) {
	draft, ok := w.drafts[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no draft in progress", ErrConstraintViolation)
	}
	return draft, nil
}

func copyDraft(d *Draft) Draft {
	out := *d
	out.SelectedFabrics = append([]models.Fabric(nil), d.SelectedFabrics...)
	out.GeneratedDesigns = append([]string(nil), d.GeneratedDesigns...)
	if d.SelectedDesign != nil {
		design := *d.SelectedDesign
		out.SelectedDesign = &design
	}
	return out
}
