package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/valueobjects"
)

// Fakes em memória compartilhados pelos testes de serviço.

type nopLogger struct{}

func (nopLogger) Info(string, ...any)      {}
func (nopLogger) Error(string, ...any)     {}
func (nopLogger) Debug(string, ...any)     {}
func (nopLogger) Warn(string, ...any)      {}
func (nopLogger) With(...any) ports.Logger { return nopLogger{} }

type memRoleRepo struct {
	roles map[string]*entities.Role // por nome
	err   error
}

func newMemRoleRepo(roles ...*entities.Role) *memRoleRepo {
	repo := &memRoleRepo{roles: make(map[string]*entities.Role)}
	for i, role := range roles {
		if role.ID == "" {
			role.ID = fmt.Sprintf("role-%d", i+1)
		}
		repo.roles[role.Name] = role
	}
	return repo
}

func (r *memRoleRepo) Create(_ context.Context, role *entities.Role) error {
	if r.err != nil {
		return r.err
	}
	if role.ID == "" {
		role.ID = fmt.Sprintf("role-%d", len(r.roles)+1)
	}
	r.roles[role.Name] = role
	return nil
}

func (r *memRoleRepo) FindByID(_ context.Context, id string) (*entities.Role, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) FindByName(_ context.Context, name string) (*entities.Role, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.roles[name], nil
}

func (r *memRoleRepo) Update(_ context.Context, role *entities.Role) error {
	if r.err != nil {
		return r.err
	}
	for name, existing := range r.roles {
		if existing.ID == role.ID && name != role.Name {
			delete(r.roles, name)
		}
	}
	r.roles[role.Name] = role
	return nil
}

func (r *memRoleRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for name, role := range r.roles {
		if role.ID == id {
			delete(r.roles, name)
		}
	}
	return nil
}

func (r *memRoleRepo) List(_ context.Context) ([]*entities.Role, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entities.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

type memUserRepo struct {
	users map[string]*entities.User // por ID
	err   error
}

func newMemUserRepo(users ...*entities.User) *memUserRepo {
	repo := &memUserRepo{users: make(map[string]*entities.User)}
	for i, user := range users {
		if user.ID == "" {
			user.ID = fmt.Sprintf("user-%d", i+1)
		}
		repo.users[user.ID] = user
	}
	return repo
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if strings.EqualFold(user.Email.String(), email) && !user.IsDeleted() {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByResetToken(_ context.Context, hashedToken string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.ResetPasswordToken == hashedToken {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindOverrides(_ context.Context, id string) (map[string]bool, error) {
	if r.err != nil {
		return nil, r.err
	}
	if user, ok := r.users[id]; ok {
		return user.Overrides, nil
	}
	return nil, nil
}

func (r *memUserRepo) ExistByIDs(_ context.Context, ids []string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, id := range ids {
		if _, ok := r.users[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) List(_ context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		if user.IsDeleted() && !filters.IncludeDeleted {
			continue
		}
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

type memTicketRepo struct {
	tickets map[string]*entities.Ticket
	err     error
}

func newMemTicketRepo(tickets ...*entities.Ticket) *memTicketRepo {
	repo := &memTicketRepo{tickets: make(map[string]*entities.Ticket)}
	for i, ticket := range tickets {
		if ticket.ID == "" {
			ticket.ID = fmt.Sprintf("ticket-%d", i+1)
		}
		repo.tickets[ticket.ID] = ticket
	}
	return repo
}

func (r *memTicketRepo) Create(_ context.Context, ticket *entities.Ticket) error {
	if r.err != nil {
		return r.err
	}
	if ticket.ID == "" {
		ticket.ID = fmt.Sprintf("ticket-%d", len(r.tickets)+1)
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *memTicketRepo) FindByID(_ context.Context, id string) (*entities.Ticket, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tickets[id], nil
}

func (r *memTicketRepo) Update(_ context.Context, ticket *entities.Ticket) error {
	if r.err != nil {
		return r.err
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *memTicketRepo) List(_ context.Context, filters repositories.TicketFilters) ([]*entities.Ticket, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entities.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		if filters.OnlyDeleted {
			if !ticket.IsDeleted() {
				continue
			}
			if !filters.Scope.Admin {
				// Deletados ignoram view-all: só os próprios registros
				owned := filters.Scope
				owned.ViewAll = false
				if !filters.Scope.ViewDeleted ||
					!owned.CanView(ticket.AssigneeID, ticket.AssigneeIDs, ticket.CreatedBy, false) {
					continue
				}
			}
			out = append(out, ticket)
			continue
		}
		if ticket.IsDeleted() && !filters.Scope.Admin {
			continue
		}
		if !filters.Scope.CanView(ticket.AssigneeID, ticket.AssigneeIDs, ticket.CreatedBy, false) {
			continue
		}
		out = append(out, ticket)
	}
	return out, nil
}

func (r *memTicketRepo) CountByStatusPriority(_ context.Context) ([]repositories.TicketSummaryRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	counts := make(map[string]*repositories.TicketSummaryRow)
	for _, ticket := range r.tickets {
		key := fmt.Sprintf("%s|%s|%t", ticket.Status, ticket.Priority, ticket.IsDeleted())
		if row, ok := counts[key]; ok {
			row.Count++
			continue
		}
		counts[key] = &repositories.TicketSummaryRow{
			Status:   string(ticket.Status),
			Priority: string(ticket.Priority),
			Deleted:  ticket.IsDeleted(),
			Count:    1,
		}
	}
	out := make([]repositories.TicketSummaryRow, 0, len(counts))
	for _, row := range counts {
		out = append(out, *row)
	}
	return out, nil
}

type memSalesRepo struct {
	tickets map[string]*entities.SalesTicket
	err     error
}

func newMemSalesRepo(tickets ...*entities.SalesTicket) *memSalesRepo {
	repo := &memSalesRepo{tickets: make(map[string]*entities.SalesTicket)}
	for i, ticket := range tickets {
		if ticket.ID == "" {
			ticket.ID = fmt.Sprintf("sls-%d", i+1)
		}
		repo.tickets[ticket.ID] = ticket
	}
	return repo
}

func (r *memSalesRepo) Create(_ context.Context, ticket *entities.SalesTicket) error {
	if r.err != nil {
		return r.err
	}
	if ticket.ID == "" {
		ticket.ID = fmt.Sprintf("sls-%d", len(r.tickets)+1)
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *memSalesRepo) FindByID(_ context.Context, id string) (*entities.SalesTicket, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tickets[id], nil
}

func (r *memSalesRepo) Update(_ context.Context, ticket *entities.SalesTicket) error {
	if r.err != nil {
		return r.err
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *memSalesRepo) List(_ context.Context, filters repositories.SalesFilters) ([]*entities.SalesTicket, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entities.SalesTicket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		if ticket.IsDeleted() && !filters.Scope.Admin {
			continue
		}
		if filters.Status != nil && ticket.Status != *filters.Status {
			continue
		}
		out = append(out, ticket)
	}
	return out, nil
}

type memActivityRepo struct {
	entries []*entities.ActivityLog
}

func (r *memActivityRepo) Create(_ context.Context, entry *entities.ActivityLog) error {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("log-%d", len(r.entries)+1)
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memActivityRepo) List(_ context.Context, ticketID *string) ([]*entities.ActivityLog, error) {
	if ticketID == nil {
		return r.entries, nil
	}
	out := make([]*entities.ActivityLog, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.TicketID == *ticketID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type memStore struct {
	saved []entities.Attachment
}

func (s *memStore) Save(_ context.Context, upload ports.Upload, uploadedBy string) (entities.Attachment, error) {
	item := entities.Attachment{
		Filename:   upload.Filename,
		URL:        "/uploads/" + upload.Filename,
		MimeType:   upload.MimeType,
		Size:       upload.Size,
		UploadedBy: uploadedBy,
	}
	s.saved = append(s.saved, item)
	return item, nil
}

type memTagRepo struct {
	tags map[string]*entities.Tag // por ID
	err  error
}

func newMemTagRepo(tags ...*entities.Tag) *memTagRepo {
	repo := &memTagRepo{tags: make(map[string]*entities.Tag)}
	for i, tag := range tags {
		if tag.ID == "" {
			tag.ID = fmt.Sprintf("tag-%d", i+1)
		}
		repo.tags[tag.ID] = tag
	}
	return repo
}

func (r *memTagRepo) Create(_ context.Context, tag *entities.Tag) error {
	if r.err != nil {
		return r.err
	}
	if tag.ID == "" {
		tag.ID = fmt.Sprintf("tag-%d", len(r.tags)+1)
	}
	r.tags[tag.ID] = tag
	return nil
}

func (r *memTagRepo) FindByID(_ context.Context, id string) (*entities.Tag, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tags[id], nil
}

func (r *memTagRepo) FindByName(_ context.Context, name string) (*entities.Tag, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, tag := range r.tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, nil
}

func (r *memTagRepo) Update(_ context.Context, tag *entities.Tag) error {
	if r.err != nil {
		return r.err
	}
	r.tags[tag.ID] = tag
	return nil
}

func (r *memTagRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.tags, id)
	return nil
}

func (r *memTagRepo) List(_ context.Context, onlyActive bool) ([]*entities.Tag, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entities.Tag, 0, len(r.tags))
	for _, tag := range r.tags {
		if onlyActive && !tag.Active {
			continue
		}
		out = append(out, tag)
	}
	return out, nil
}

type memAttendanceRepo struct {
	events []*entities.AttendanceEvent
}

func (r *memAttendanceRepo) Create(_ context.Context, event *entities.AttendanceEvent) error {
	if event.ID == "" {
		event.ID = fmt.Sprintf("att-%d", len(r.events)+1)
	}
	r.events = append(r.events, event)
	return nil
}

func (r *memAttendanceRepo) List(_ context.Context, filters repositories.AttendanceFilters) ([]*entities.AttendanceEvent, error) {
	out := make([]*entities.AttendanceEvent, 0, len(r.events))
	for _, event := range r.events {
		if event.Timestamp.Before(filters.Start) || event.Timestamp.After(filters.End) {
			continue
		}
		if filters.UserID != nil && event.UserID != *filters.UserID {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

type memLeaveRepo struct {
	requests map[string]*entities.LeaveRequest
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{requests: make(map[string]*entities.LeaveRequest)}
}

func (r *memLeaveRepo) Create(_ context.Context, req *entities.LeaveRequest) error {
	if req.ID == "" {
		req.ID = fmt.Sprintf("leave-%d", len(r.requests)+1)
	}
	r.requests[req.ID] = req
	return nil
}

func (r *memLeaveRepo) FindByID(_ context.Context, id string) (*entities.LeaveRequest, error) {
	return r.requests[id], nil
}

func (r *memLeaveRepo) Update(_ context.Context, req *entities.LeaveRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *memLeaveRepo) ListByUser(_ context.Context, userID string) ([]*entities.LeaveRequest, error) {
	out := make([]*entities.LeaveRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) ListByStatus(_ context.Context, status entities.RequestStatus) ([]*entities.LeaveRequest, error) {
	out := make([]*entities.LeaveRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

type memCorrectionRepo struct {
	requests map[string]*entities.AttendanceCorrection
}

func newMemCorrectionRepo() *memCorrectionRepo {
	return &memCorrectionRepo{requests: make(map[string]*entities.AttendanceCorrection)}
}

func (r *memCorrectionRepo) Create(_ context.Context, corr *entities.AttendanceCorrection) error {
	if corr.ID == "" {
		corr.ID = fmt.Sprintf("corr-%d", len(r.requests)+1)
	}
	r.requests[corr.ID] = corr
	return nil
}

func (r *memCorrectionRepo) FindByID(_ context.Context, id string) (*entities.AttendanceCorrection, error) {
	return r.requests[id], nil
}

func (r *memCorrectionRepo) Update(_ context.Context, corr *entities.AttendanceCorrection) error {
	r.requests[corr.ID] = corr
	return nil
}

func (r *memCorrectionRepo) ListByUser(_ context.Context, userID string) ([]*entities.AttendanceCorrection, error) {
	out := make([]*entities.AttendanceCorrection, 0, len(r.requests))
	for _, corr := range r.requests {
		if corr.UserID == userID {
			out = append(out, corr)
		}
	}
	return out, nil
}

func (r *memCorrectionRepo) ListByStatus(_ context.Context, status entities.RequestStatus) ([]*entities.AttendanceCorrection, error) {
	out := make([]*entities.AttendanceCorrection, 0, len(r.requests))
	for _, corr := range r.requests {
		if corr.Status == status {
			out = append(out, corr)
		}
	}
	return out, nil
}

type memMailer struct {
	sent []ports.Mail
	err  error
}

func (m *memMailer) Send(_ context.Context, mail ports.Mail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

type stubTokens struct{}

func (stubTokens) Issue(claims ports.TokenClaims) (string, error) {
	return "tok-" + claims.UserID, nil
}

func (stubTokens) Verify(string) (*ports.TokenClaims, error) {
	return nil, ports.ErrTokenInvalid
}

func testUser(id, emailAddr, role string) *entities.User {
	email, err := valueobjects.NewEmail(emailAddr)
	if err != nil {
		panic(err)
	}
	return &entities.User{ID: id, Email: email, Name: "Test User", Role: role}
}

func testUploads(names ...string) []ports.Upload {
	out := make([]ports.Upload, 0, len(names))
	for _, name := range names {
		out = append(out, ports.Upload{
			Filename: name,
			MimeType: "application/pdf",
			Size:     128,
			Content:  strings.NewReader("conteudo"),
		})
	}
	return out
}

func newAccessService(roleRepo *memRoleRepo, userRepo *memUserRepo) *AccessService {
	return NewAccessService(roleRepo, userRepo, nopLogger{})
}

func newActivityService(repo *memActivityRepo) *ActivityService {
	return NewActivityService(repo, nil, nopLogger{})
}
