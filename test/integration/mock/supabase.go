// Package mock provides in-process stand-ins for the hosted provider and
// Redis used by the BDD integration tests.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTSecret signs the access tokens minted by the mock so the API's local
// token validation accepts them.
const JWTSecret = "integration-test-secret"

type mockUser struct {
	id       uuid.UUID
	email    string
	password string
}

// SupabaseMock emulates the hosted provider: the auth endpoints under
// /auth/v1 and the table REST endpoints under /rest/v1. Tables are plain
// in-memory row lists keyed by table name.
type SupabaseMock struct {
	mu sync.Mutex

	server *httptest.Server

	users     map[string]mockUser // keyed by email
	sessions  map[string]mockUser // keyed by access token
	authCodes map[string]string   // code -> email

	tables       map[string][]map[string]any
	failedTables map[string]bool
}

// NewSupabase creates and starts a provider mock.
func NewSupabase() *SupabaseMock {
	s := &SupabaseMock{
		users:        map[string]mockUser{},
		sessions:     map[string]mockUser{},
		authCodes:    map[string]string{},
		tables:       map[string][]map[string]any{},
		failedTables: map[string]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/token", s.handleToken)
	mux.HandleFunc("/auth/v1/user", s.handleUser)
	mux.HandleFunc("/auth/v1/logout", s.handleLogout)
	mux.HandleFunc("/rest/v1/", s.handleRest)

	s.server = httptest.NewServer(mux)
	return s
}

// URL returns the mock's base URL, used as the provider project URL.
func (s *SupabaseMock) URL() string {
	return s.server.URL
}

// Close shuts the mock server down.
func (s *SupabaseMock) Close() {
	s.server.Close()
}

// Reset clears all users, sessions, rows, and failure injections.
func (s *SupabaseMock) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = map[string]mockUser{}
	s.sessions = map[string]mockUser{}
	s.authCodes = map[string]string{}
	s.tables = map[string][]map[string]any{}
	s.failedTables = map[string]bool{}
}

// RegisterUser adds a user that can sign in with the given password.
func (s *SupabaseMock) RegisterUser(id uuid.UUID, email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = mockUser{id: id, email: email, password: password}
}

// RegisterAuthCode adds an authorization code redeemable for the user's
// session via the pkce grant.
func (s *SupabaseMock) RegisterAuthCode(code, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authCodes[code] = email
}

// IssueToken mints a signed access token for a registered user and records
// the session so token lookups resolve it. The token is also valid for the
// API's local JWT validation.
func (s *SupabaseMock) IssueToken(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return "", fmt.Errorf("no registered user for %s", email)
	}
	token, err := signAccessToken(user)
	if err != nil {
		return "", err
	}
	s.sessions[token] = user
	return token, nil
}

// SeedRow inserts a row into a table, filling in an id when absent.
func (s *SupabaseMock) SeedRow(table string, row map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.New().String()
	}
	s.tables[table] = append(s.tables[table], row)
}

// FailTable makes every request against the table return a server error,
// simulating an unavailable source.
func (s *SupabaseMock) FailTable(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failedTables[table] = true
}

// Rows returns a copy of the stored rows for a table.
func (s *SupabaseMock) Rows(table string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]map[string]any, len(s.tables[table]))
	copy(rows, s.tables[table])
	return rows
}

func signAccessToken(user mockUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.id.String(),
		"email": user.email,
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(JWTSecret))
}

// Auth endpoints

func (s *SupabaseMock) handleToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		Code         string `json:"code"`
		AuthCode     string `json:"auth_code"`
		RefreshToken string `json:"refresh_token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	defer s.mu.Unlock()

	var user mockUser
	switch r.URL.Query().Get("grant_type") {
	case "password":
		registered, ok := s.users[body.Email]
		if !ok || registered.password != body.Password {
			writeAuthError(w, http.StatusBadRequest, "invalid_grant", "Invalid login credentials")
			return
		}
		user = registered
	case "pkce":
		code := body.Code
		if code == "" {
			code = body.AuthCode
		}
		email, ok := s.authCodes[code]
		if !ok {
			writeAuthError(w, http.StatusBadRequest, "invalid_grant", "Invalid authorization code")
			return
		}
		delete(s.authCodes, code)
		user = s.users[email]
	case "refresh_token":
		found := false
		for _, sess := range s.sessions {
			if body.RefreshToken == refreshTokenFor(sess) {
				user = sess
				found = true
				break
			}
		}
		if !found {
			writeAuthError(w, http.StatusBadRequest, "invalid_grant", "Invalid refresh token")
			return
		}
	default:
		writeAuthError(w, http.StatusBadRequest, "unsupported_grant_type", "Unsupported grant type")
		return
	}

	token, err := signAccessToken(user)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	s.sessions[token] = user

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  token,
		"token_type":    "bearer",
		"expires_in":    3600,
		"refresh_token": refreshTokenFor(user),
		"user": map[string]any{
			"id":    user.id.String(),
			"aud":   "authenticated",
			"email": user.email,
		},
	})
}

func (s *SupabaseMock) handleUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions[bearerToken(r)]
	if !ok {
		writeAuthError(w, http.StatusUnauthorized, "invalid_token", "Invalid or expired token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":    user.id.String(),
		"aud":   "authenticated",
		"email": user.email,
	})
}

func (s *SupabaseMock) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

// refreshTokenFor derives a stable refresh token per user so the refresh
// grant can find the owning session without extra bookkeeping.
func refreshTokenFor(user mockUser) string {
	return "refresh-" + user.id.String()
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// REST endpoints

func (s *SupabaseMock) handleRest(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failedTables[table] {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "service unavailable",
		})
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleSelect(w, r, table)
	case http.MethodPost:
		s.handleInsert(w, r, table)
	case http.MethodPatch:
		s.handleUpdate(w, r, table)
	case http.MethodDelete:
		s.handleDelete(w, r, table)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *SupabaseMock) handleSelect(w http.ResponseWriter, r *http.Request, table string) {
	matched := []map[string]any{}
	for _, row := range s.tables[table] {
		if rowMatches(row, r.URL.Query()) {
			matched = append(matched, row)
		}
	}
	if order := r.URL.Query().Get("order"); order != "" {
		sortRows(matched, order)
	}
	writeJSON(w, http.StatusOK, matched)
}

// sortRows applies a PostgREST order expression. Only the leading column
// and the direction token after it are honored; values compare as strings,
// which is enough for RFC3339 dates and names.
func sortRows(rows []map[string]any, order string) {
	tokens := strings.Split(order, ".")
	column := tokens[0]
	descending := len(tokens) > 1 && tokens[1] == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		a := fmt.Sprintf("%v", rows[i][column])
		b := fmt.Sprintf("%v", rows[j][column])
		if descending {
			return a > b
		}
		return a < b
	})
}

func (s *SupabaseMock) handleInsert(w http.ResponseWriter, r *http.Request, table string) {
	rows, err := decodeRows(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, row := range rows {
		if id, ok := row["id"]; !ok || id == "" || id == uuid.Nil.String() {
			row["id"] = uuid.New().String()
		}
		if _, ok := row["created_at"]; !ok {
			row["created_at"] = now
		}
		if _, ok := row["updated_at"]; !ok {
			row["updated_at"] = now
		}
		s.tables[table] = append(s.tables[table], row)
	}
	writeJSON(w, http.StatusCreated, rows)
}

func (s *SupabaseMock) handleUpdate(w http.ResponseWriter, r *http.Request, table string) {
	rows, err := decodeRows(r)
	if err != nil || len(rows) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid update body"})
		return
	}
	patch := rows[0]

	updated := []map[string]any{}
	for _, row := range s.tables[table] {
		if !rowMatches(row, r.URL.Query()) {
			continue
		}
		for key, value := range patch {
			if key == "id" || key == "created_at" {
				continue
			}
			row[key] = value
		}
		row["updated_at"] = time.Now().UTC().Format(time.RFC3339)
		updated = append(updated, row)
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *SupabaseMock) handleDelete(w http.ResponseWriter, r *http.Request, table string) {
	kept := []map[string]any{}
	deleted := []map[string]any{}
	for _, row := range s.tables[table] {
		if rowMatches(row, r.URL.Query()) {
			deleted = append(deleted, row)
		} else {
			kept = append(kept, row)
		}
	}
	s.tables[table] = kept
	writeJSON(w, http.StatusOK, deleted)
}

// rowMatches applies PostgREST-style column filters (eq., gte., lte.) from
// the query string. Date columns hold RFC3339 strings, so range filters
// compare lexically.
func rowMatches(row map[string]any, query map[string][]string) bool {
	for column, values := range query {
		switch column {
		case "select", "order", "limit", "offset":
			continue
		}
		for _, value := range values {
			op, operand, ok := strings.Cut(value, ".")
			if !ok {
				continue
			}
			cell := fmt.Sprintf("%v", row[column])
			switch op {
			case "eq":
				if cell != operand {
					return false
				}
			case "gte":
				if cell < operand {
					return false
				}
			case "lte":
				if cell > operand {
					return false
				}
			}
		}
	}
	return true
}

func decodeRows(r *http.Request) ([]map[string]any, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid body: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}

	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("invalid row payload: %w", err)
	}
	return []map[string]any{row}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeAuthError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]any{
		"error":             code,
		"error_description": description,
		"msg":               description,
	})
}
