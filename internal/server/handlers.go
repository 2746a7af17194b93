package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/lifeviz/lifeviz/internal/storage"
	"github.com/shopspring/decimal"
)

// activityPayload is the wire form of an activity; hours arrive as plain
// numbers from the form layer.
type activityPayload struct {
	Name        string  `json:"name"`
	HoursPerDay float64 `json:"hours_per_day"`
	DaysPerWeek int     `json:"days_per_week,omitempty"`
}

func (p activityPayload) toDomain() (domain.Activity, error) {
	if p.Name == "" {
		return domain.Activity{}, errors.New("activity name is required")
	}
	hours, err := finiteDecimal(p.HoursPerDay, "hours_per_day")
	if err != nil {
		return domain.Activity{}, err
	}
	if hours.IsNegative() || hours.GreaterThan(decimal.NewFromInt(24)) {
		return domain.Activity{}, errors.New("hours_per_day must be within 0..24")
	}
	return domain.Activity{Name: p.Name, HoursPerDay: hours, DaysPerWeek: p.DaysPerWeek}, nil
}

// finiteDecimal rejects NaN and infinities before they reach the engine; the
// engine itself assumes finite inputs and degrades everything else.
func finiteDecimal(value float64, field string) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, errors.New(field + " must be a finite number")
	}
	return decimal.NewFromFloat(value), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.provider.Countries(r.Context())
	if err != nil {
		s.logger.Errorf("country list fetch failed: %v", err)
		writeError(w, http.StatusBadGateway, "country list unavailable")
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

func (s *Server) handleLifeExpectancy(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("country")
	if code == "" {
		writeError(w, http.StatusBadRequest, "country query parameter is required")
		return
	}
	value := s.provider.LifeExpectancy(r.Context(), code)
	writeJSON(w, http.StatusOK, map[string]any{
		"country_code":    code,
		"life_expectancy": value,
	})
}

type trendRequest struct {
	Activity      activityPayload `json:"activity"`
	ChangeInHours float64         `json:"change_in_hours"`
	AgeRange      struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"age_range"`
	CurrentAge float64 `json:"current_age"`
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	var req trendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := req.Activity.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	change, err := finiteDecimal(req.ChangeInHours, "change_in_hours")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := finiteDecimal(req.AgeRange.Start, "age_range.start")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := finiteDecimal(req.AgeRange.End, "age_range.end")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	currentAge, err := finiteDecimal(req.CurrentAge, "current_age")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.engine.AnalyzeTrend(activity, change, domain.AgeRange{Start: start, End: end}, currentAge)
	writeJSON(w, http.StatusOK, result)
}

type costBenefitRequest struct {
	From              activityPayload `json:"from"`
	To                activityPayload `json:"to"`
	HoursToReallocate float64         `json:"hours_to_reallocate"`
	CurrentAge        float64         `json:"current_age"`
	LifeExpectancy    float64         `json:"life_expectancy"`
	CountryCode       string          `json:"country_code,omitempty"`
}

func (s *Server) handleCostBenefit(w http.ResponseWriter, r *http.Request) {
	var req costBenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	from, err := req.From.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := req.To.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "to: "+err.Error())
		return
	}
	hoursMoved, err := finiteDecimal(req.HoursToReallocate, "hours_to_reallocate")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	currentAge, err := finiteDecimal(req.CurrentAge, "current_age")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lifeExpectancy, err := finiteDecimal(req.LifeExpectancy, "life_expectancy")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if lifeExpectancy.IsZero() && req.CountryCode != "" {
		lifeExpectancy = s.provider.LifeExpectancy(r.Context(), req.CountryCode)
	}

	result := s.engine.AnalyzeCostBenefit(from, to, hoursMoved, currentAge, lifeExpectancy)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePhases(w http.ResponseWriter, r *http.Request) {
	age, err := queryDecimal(r, "age")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lifeExpectancy, err := queryDecimal(r, "life_expectancy")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.engine.LifePhase(age, lifeExpectancy)
	writeJSON(w, http.StatusOK, result)
}

func queryDecimal(r *http.Request, name string) (decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return decimal.Zero, errors.New(name + " query parameter is required")
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return decimal.Zero, errors.New(name + " must be a number")
	}
	return finiteDecimal(parsed, name)
}

type reportRequest struct {
	Name           string            `json:"name,omitempty"`
	BirthDate      time.Time         `json:"birth_date"`
	CountryCode    string            `json:"country_code,omitempty"`
	LifeExpectancy float64           `json:"life_expectancy,omitempty"`
	Activities     []activityPayload `json:"activities"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BirthDate.IsZero() {
		writeError(w, http.StatusBadRequest, "birth_date is required")
		return
	}

	profile := &domain.Profile{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		CountryCode: req.CountryCode,
	}
	for _, payload := range req.Activities {
		activity, err := payload.toDomain()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		profile.Activities = append(profile.Activities, activity)
	}

	lifeExpectancy, err := finiteDecimal(req.LifeExpectancy, "life_expectancy")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !lifeExpectancy.IsPositive() {
		lifeExpectancy = s.provider.LifeExpectancy(r.Context(), req.CountryCode)
	}

	report := s.engine.Summarize(profile, lifeExpectancy, time.Now())
	writeJSON(w, http.StatusOK, report)
}

type snapshotRequest struct {
	BirthDate   time.Time         `json:"birth_date"`
	CountryCode string            `json:"country_code"`
	Activities  []activityPayload `json:"activities"`
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BirthDate.IsZero() {
		writeError(w, http.StatusBadRequest, "birth_date is required")
		return
	}

	snapshot := &domain.Snapshot{
		BirthDate:   req.BirthDate,
		CountryCode: req.CountryCode,
	}
	for _, payload := range req.Activities {
		activity, err := payload.toDomain()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		snapshot.Activities = append(snapshot.Activities, activity)
	}

	if _, err := s.snapshots.Save(r.Context(), snapshot); err != nil {
		s.logger.Errorf("saving snapshot: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save snapshot")
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "snapshot id must be an integer")
		return
	}

	snapshot, err := s.snapshots.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		s.logger.Errorf("loading snapshot %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load snapshot")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	snapshots, err := s.snapshots.List(r.Context(), limit)
	if err != nil {
		s.logger.Errorf("listing snapshots: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}
	if snapshots == nil {
		snapshots = []domain.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snapshots)
}
