//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"rosterd/internal/domain/request"
	"rosterd/internal/domain/schedule"
	"rosterd/internal/infra"
	"rosterd/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work with transactional staging: a callback works on a
// cloned snapshot and the store only adopts it when the callback succeeds,
// mirroring the commit/rollback behavior the commands rely on. Row locks
// behave like SELECT ... FOR UPDATE and advisory locks: FindForUpdate and
// LockUsers block until the holding transaction commits or rolls back, and
// the snapshot is refreshed on acquisition so the waiter sees the winner's
// committed writes.

type memStore struct {
	mu          sync.Mutex
	shifts      map[uuid.UUID]*schedule.Shift
	assignments []*schedule.Assignment
	requests    map[uuid.UUID]*request.Request
	rowLocks    map[uuid.UUID]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		shifts:   make(map[uuid.UUID]*schedule.Shift),
		requests: make(map[uuid.UUID]*request.Request),
		rowLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *memStore) rowLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.rowLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.rowLocks[id] = lock
	}
	return lock
}

func (s *memStore) addShift(shift *schedule.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts[shift.ID()] = cloneShift(shift)
}

func (s *memStore) addAssignment(a *schedule.Assignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append(s.assignments, cloneAssignment(a))
}

func (s *memStore) shift(id uuid.UUID) *schedule.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	if shift, ok := s.shifts[id]; ok {
		return cloneShift(shift)
	}
	return nil
}

func (s *memStore) request(id uuid.UUID) *request.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req, ok := s.requests[id]; ok {
		return cloneRequest(req)
	}
	return nil
}

func (s *memStore) assignmentCount(shiftID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.assignments {
		if a.ShiftID() == shiftID {
			n++
		}
	}
	return n
}

type memUoW struct {
	store *memStore
}

func newMemUoW(store *memStore) *memUoW {
	return &memUoW{store: store}
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store, heldIDs: make(map[uuid.UUID]bool)}
	tx.refresh()
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	u.store.mu.Lock()
	u.store.shifts = tx.shifts
	u.store.assignments = tx.assignments
	u.store.requests = tx.requests
	u.store.mu.Unlock()
	return nil
}

type memTx struct {
	store       *memStore
	shifts      map[uuid.UUID]*schedule.Shift
	assignments []*schedule.Assignment
	requests    map[uuid.UUID]*request.Request
	lockedUsers []uuid.UUID
	held        []*sync.Mutex
	heldIDs     map[uuid.UUID]bool
}

// refresh re-snapshots committed state. Every command locks before it
// writes, so a refresh on lock acquisition never discards staged changes.
func (t *memTx) refresh() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.shifts = make(map[uuid.UUID]*schedule.Shift, len(t.store.shifts))
	for id, shift := range t.store.shifts {
		t.shifts[id] = cloneShift(shift)
	}
	t.assignments = make([]*schedule.Assignment, 0, len(t.store.assignments))
	for _, a := range t.store.assignments {
		t.assignments = append(t.assignments, cloneAssignment(a))
	}
	t.requests = make(map[uuid.UUID]*request.Request, len(t.store.requests))
	for id, req := range t.store.requests {
		t.requests[id] = cloneRequest(req)
	}
}

func (t *memTx) acquire(id uuid.UUID) bool {
	if t.heldIDs[id] {
		return false
	}
	lock := t.store.rowLock(id)
	lock.Lock()
	t.heldIDs[id] = true
	t.held = append(t.held, lock)
	return true
}

func (t *memTx) releaseLocks() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *memTx) Shifts() shared.ShiftRepository           { return &memShiftRepo{tx: t} }
func (t *memTx) Assignments() shared.AssignmentRepository { return &memAssignmentRepo{tx: t} }
func (t *memTx) Requests() shared.RequestRepository       { return &memRequestRepo{tx: t} }

type memShiftRepo struct {
	tx *memTx
}

func (r *memShiftRepo) Create(_ context.Context, shift *schedule.Shift) error {
	r.tx.shifts[shift.ID()] = cloneShift(shift)
	return nil
}

func (r *memShiftRepo) Update(_ context.Context, shift *schedule.Shift) error {
	existing, ok := r.tx.shifts[shift.ID()]
	if !ok || existing.CompanyID() != shift.CompanyID() {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	r.tx.shifts[shift.ID()] = cloneShift(shift)
	return nil
}

func (r *memShiftRepo) Delete(_ context.Context, shiftID, companyID uuid.UUID) error {
	existing, ok := r.tx.shifts[shiftID]
	if !ok || existing.CompanyID() != companyID {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	delete(r.tx.shifts, shiftID)

	kept := r.tx.assignments[:0]
	for _, a := range r.tx.assignments {
		if a.ShiftID() != shiftID {
			kept = append(kept, a)
		}
	}
	r.tx.assignments = kept
	return nil
}

func (r *memShiftRepo) Find(_ context.Context, shiftID, companyID uuid.UUID) (*schedule.Shift, error) {
	existing, ok := r.tx.shifts[shiftID]
	if !ok || existing.CompanyID() != companyID {
		return nil, infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	return cloneShift(existing), nil
}

func (r *memShiftRepo) FindForUpdate(ctx context.Context, shiftID, companyID uuid.UUID) (*schedule.Shift, error) {
	if r.tx.acquire(shiftID) {
		r.tx.refresh()
	}
	return r.Find(ctx, shiftID, companyID)
}

type memAssignmentRepo struct {
	tx *memTx
}

func (r *memAssignmentRepo) Insert(_ context.Context, assignment *schedule.Assignment) error {
	for _, a := range r.tx.assignments {
		if a.ShiftID() == assignment.ShiftID() && a.UserID() == assignment.UserID() {
			return infra.WrapRepoErr("duplicate assignment", nil, infra.KindDuplicateKey)
		}
	}
	r.tx.assignments = append(r.tx.assignments, cloneAssignment(assignment))
	return nil
}

func (r *memAssignmentRepo) Delete(_ context.Context, shiftID, companyID, userID uuid.UUID) error {
	for i, a := range r.tx.assignments {
		if a.ShiftID() == shiftID && a.CompanyID() == companyID && a.UserID() == userID {
			r.tx.assignments = append(r.tx.assignments[:i], r.tx.assignments[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound)
}

func (r *memAssignmentRepo) ListByShift(_ context.Context, shiftID, companyID uuid.UUID) ([]*schedule.Assignment, error) {
	var out []*schedule.Assignment
	for _, a := range r.tx.assignments {
		if a.ShiftID() == shiftID && a.CompanyID() == companyID {
			out = append(out, cloneAssignment(a))
		}
	}
	return out, nil
}

func (r *memAssignmentRepo) FindOverlapping(
	_ context.Context,
	companyID uuid.UUID,
	userIDs []uuid.UUID,
	window schedule.TimeWindow,
	excludeShiftID uuid.UUID,
) ([]shared.OverlappingAssignment, error) {
	users := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, id := range userIDs {
		users[id] = struct{}{}
	}

	var out []shared.OverlappingAssignment
	for _, a := range r.tx.assignments {
		if a.CompanyID() != companyID || a.ShiftID() == excludeShiftID || !a.IsConfirmed() {
			continue
		}
		if _, ok := users[a.UserID()]; !ok {
			continue
		}
		shift, ok := r.tx.shifts[a.ShiftID()]
		if !ok || !shift.Window().Overlaps(window) {
			continue
		}
		out = append(out, shared.OverlappingAssignment{
			UserID:  a.UserID(),
			ShiftID: shift.ID(),
			Title:   shift.Title(),
			Start:   shift.Window().Start(),
			End:     shift.Window().End(),
		})
	}
	return out, nil
}

func (r *memAssignmentRepo) LockUsers(_ context.Context, _ uuid.UUID, userIDs []uuid.UUID) error {
	fresh := false
	for _, id := range userIDs {
		if r.tx.acquire(id) {
			fresh = true
		}
	}
	if fresh {
		r.tx.refresh()
	}
	r.tx.lockedUsers = append(r.tx.lockedUsers, userIDs...)
	return nil
}

type memRequestRepo struct {
	tx *memTx
}

func (r *memRequestRepo) Create(_ context.Context, req *request.Request) error {
	r.tx.requests[req.ID()] = cloneRequest(req)
	return nil
}

func (r *memRequestRepo) Update(_ context.Context, req *request.Request) error {
	existing, ok := r.tx.requests[req.ID()]
	if !ok || existing.CompanyID() != req.CompanyID() {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	r.tx.requests[req.ID()] = cloneRequest(req)
	return nil
}

func (r *memRequestRepo) Find(_ context.Context, requestID, companyID uuid.UUID) (*request.Request, error) {
	existing, ok := r.tx.requests[requestID]
	if !ok || existing.CompanyID() != companyID {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return cloneRequest(existing), nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	events  []shared.Event
	failErr error
}

func (n *fakeNotifier) Notify(_ context.Context, event shared.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failErr != nil {
		return n.failErr
	}
	n.events = append(n.events, event)
	return nil
}

func (n *fakeNotifier) Events() []shared.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.Event, len(n.events))
	copy(out, n.events)
	return out
}

func cloneShift(s *schedule.Shift) *schedule.Shift {
	var owner *uuid.UUID
	if s.PrimaryOwnerID() != nil {
		id := *s.PrimaryOwnerID()
		owner = &id
	}
	return schedule.ReconstructShift(
		s.ID(), s.CompanyID(), s.Title(),
		schedule.ReconstructTimeWindow(s.Window().Start(), s.Window().End()),
		s.Capacity(), owner, s.CreatedAt(), s.UpdatedAt(),
	)
}

func cloneAssignment(a *schedule.Assignment) *schedule.Assignment {
	clone, err := schedule.ReconstructAssignment(
		a.ID(), a.ShiftID(), a.CompanyID(), a.UserID(),
		a.Status(), a.Notes(), a.CreatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func cloneRequest(r *request.Request) *request.Request {
	var swap *request.SwapDetails
	if r.Swap() != nil {
		s := *r.Swap()
		swap = &s
	}
	var timeOff *request.TimeOffDetails
	if r.TimeOff() != nil {
		to := *r.TimeOff()
		timeOff = &to
	}
	var reviewedBy *uuid.UUID
	if r.ReviewedBy() != nil {
		id := *r.ReviewedBy()
		reviewedBy = &id
	}
	var reviewedAt *time.Time
	if r.ReviewedAt() != nil {
		at := *r.ReviewedAt()
		reviewedAt = &at
	}

	clone, err := request.Reconstruct(
		r.ID(), r.CompanyID(), r.RequesterID(),
		r.Kind(), r.Status(),
		swap, timeOff,
		reviewedBy, reviewedAt, r.ResponseMessage(),
		r.CreatedAt(), r.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}
