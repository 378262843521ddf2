package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"fixtureconv/internal"
	applog "fixtureconv/internal/log"
	"fixtureconv/internal/pipeline"
	"fixtureconv/internal/sheet"
	"fixtureconv/internal/util"
)

const (
	fieldFile  = "file"
	fieldFiles = "files"

	multipartMemory = 8 << 20
)

// requestError is a client mistake that is reported as is.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

type previewResponse struct {
	Data []internal.NormalizedEvent `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type metaResponse struct {
	SiteName             string                        `json:"siteName"`
	Version              string                        `json:"version"`
	Defaults             map[string]string             `json:"defaults"`
	EventTypes           []internal.EventType          `json:"eventTypes"`
	RegistrationPolicies []internal.RegistrationPolicy `json:"registrationPolicies"`
	MaxFiles             int                           `json:"maxFiles"`
	MaxUploadMB          int                           `json:"maxUploadMB"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleMeta(w http.ResponseWriter, _ *http.Request) {
	d := s.conv.Defaults()
	writeJSON(w, http.StatusOK, metaResponse{
		SiteName: s.cfg.SiteName,
		Version:  s.cfg.AppVersion,
		Defaults: map[string]string{
			pipeline.KeyTargetYear:      strconv.Itoa(d.TargetYear),
			pipeline.KeyDurationMinutes: strconv.Itoa(d.DurationMinutes),
			pipeline.KeyWarmupMinutes:   strconv.Itoa(d.WarmupMinutes),
			pipeline.KeyMeetingMinutes:  strconv.Itoa(d.MeetingMinutes),
			pipeline.KeyGroupName:       d.GroupName,
			pipeline.KeyEventType:       string(d.EventType),
			pipeline.KeyRegistration:    string(d.Registration),
		},
		EventTypes:           pipeline.EventTypes,
		RegistrationPolicies: pipeline.RegistrationPolicies,
		MaxFiles:             s.cfg.MaxFiles,
		MaxUploadMB:          s.cfg.MaxUploadMB,
	})
}

// handlePreview converts the first uploaded file and returns the events as
// JSON.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	files, values, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if len(files) > 1 {
		files = files[:1]
	}

	res, err := s.conv.Convert(r.Context(), files, values)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{Data: res.Events})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	files, values, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	blob, _, err := s.conv.ConvertToXLSX(r.Context(), files, values)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	filename := util.SanitizeFilename(s.cfg.OutputFilename, "tapahtumat.xlsx")
	w.Header().Set("Content-Type", sheet.MimeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

// readUpload collects the uploaded files (in form order, "file" parts before
// "files" parts) and the settings fields of a multipart request.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]sheet.File, map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(min(multipartMemory, s.cfg.MaxUploadBytes())); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			return nil, nil, &pipeline.MissingFileError{}
		case errors.As(err, &tooLarge):
			return nil, nil, &requestError{
				status:  http.StatusRequestEntityTooLarge,
				message: fmt.Sprintf("Tiedosto on liian suuri (enintään %d Mt).", s.cfg.MaxUploadMB),
			}
		default:
			return nil, nil, fmt.Errorf("parse upload: %w", err)
		}
	}
	form := r.MultipartForm
	defer func() { _ = form.RemoveAll() }()

	headers := append([]*multipart.FileHeader{}, form.File[fieldFile]...)
	headers = append(headers, form.File[fieldFiles]...)
	if len(headers) > s.cfg.MaxFiles {
		return nil, nil, &requestError{
			status:  http.StatusBadRequest,
			message: fmt.Sprintf("Liian monta tiedostoa (enintään %d).", s.cfg.MaxFiles),
		}
	}

	files := make([]sheet.File, 0, len(headers))
	for _, fh := range headers {
		data, err := readFilePart(fh)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, sheet.File{Name: fh.Filename, Data: data})
	}

	values := make(map[string]string, len(pipeline.SettingKeys))
	for _, key := range pipeline.SettingKeys {
		if v := form.Value[key]; len(v) > 0 {
			values[key] = v[0]
		}
	}
	return files, values, nil
}

func readFilePart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// fail maps err to a status code and a message the upload form can show.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	logger := applog.WithComponentFromContext(r.Context(), "web")
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.Warn().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request rejected")
	}
	writeError(w, status, message)
}

func classify(err error) (int, string) {
	var (
		missing *pipeline.MissingFileError
		invalid *pipeline.ValidationError
		reqErr  *requestError
	)
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, missing.Error()
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Error()
	case errors.As(err, &reqErr):
		return reqErr.status, reqErr.message
	default:
		return http.StatusInternalServerError, pipeline.UserErrorPrefix + err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
