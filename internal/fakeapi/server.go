// Package fakeapi is an in-memory stand-in for the AIPMA REST API, used to exercise the test
// suite without a deployment. It answers the same routes with the same response envelopes.
package fakeapi

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	Noticias = "noticias"
	Eventos  = "eventos"
	Miembros = "miembros"
	Mensajes = "mensajes"

	apiPrefix     = "/api/"
	dateFormatOut = "2006-01-02T15:04:05.000Z07:00"

	InfoMessage = "API de AIPMA funcionando correctamente"
)

var InfoEndpoints = []string{"/api/noticias", "/api/eventos", "/api/miembros", "/api/contacto"}

// Each listable collection is returned sorted by one date field.
var listOrder = map[string]struct {
	field      string
	descending bool
}{
	Noticias: {"fecha", true},
	Eventos:  {"fecha", false},
	Miembros: {"fechaIngreso", true},
}

// Fields copied from a POST body into the stored record. Date fields are normalized; a date
// that cannot be parsed is stored as null.
var createFields = map[string]struct {
	item        string
	fields      []string
	dateField   string
	dateDefault bool // use the current time when the date is absent
}{
	Noticias: {"noticia", []string{"titulo", "resumen", "contenido", "categoria", "autor"}, "fecha", true},
	Eventos:  {"evento", []string{"titulo", "descripcion", "ubicacion", "tipo", "capacidad"}, "fecha", false},
	Miembros: {"miembro", []string{"nombre", "organizacion", "especialidad", "pais", "tipo"}, "fechaIngreso", true},
}

// Server implements http.Handler. Paths are expected to start with /api/, as they do when the
// API is deployed; anything else is treated as an unknown endpoint.
type Server struct {
	collections map[string][]ldvalue.Value
	seed        bool
	now         func() time.Time
	logger      logrus.FieldLogger
	lock        sync.Mutex
}

// New creates a Server. If seed is true, any empty collection is filled with demo data
// whenever it is read, as the deployed API does; otherwise collections start and stay empty
// until something is posted. A nil logger discards output.
func New(seed bool, logger logrus.FieldLogger) *Server {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(ioutil.Discard)
		logger = l
	}
	return &Server{
		collections: make(map[string][]ldvalue.Value),
		seed:        seed,
		now:         time.Now,
		logger:      logger,
	}
}

// Items returns a copy of the stored records in a collection, in insertion order.
func (s *Server) Items(collection string) []ldvalue.Value {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]ldvalue.Value(nil), s.collections[collection]...)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, apiPrefix), "/")
	s.logger.WithFields(logrus.Fields{"method": r.Method, "route": route}).Debug("Request")

	switch r.Method {
	case http.MethodGet:
		s.handleGet(w, route)
	case http.MethodPost:
		s.handlePost(w, r, route)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGet(w http.ResponseWriter, route string) {
	if _, ok := listOrder[route]; !ok {
		writeJSON(w, http.StatusOK, infoBody())
		return
	}
	s.lock.Lock()
	if s.seed {
		s.seedIfEmpty(route)
	}
	items := s.sorted(route)
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, ldvalue.ObjectBuild().Set(route, ldvalue.ArrayOf(items...)).Build())
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request, route string) {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	var body ldvalue.Value
	if err := json.Unmarshal(data, &body); err != nil {
		s.logger.WithError(err).Warn("Malformed request body")
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if route == "contacto" {
		msg := ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("nombre", body.GetByKey("nombre")).
			Set("email", body.GetByKey("email")).
			Set("mensaje", body.GetByKey("mensaje")).
			Set("fecha", ldvalue.String(formatTime(s.now()))).
			Set("leido", ldvalue.Bool(false)).
			Build()
		s.insert(Mensajes, msg)
		writeJSON(w, http.StatusOK, ldvalue.ObjectBuild().
			Set("success", ldvalue.Bool(true)).
			Set("message", ldvalue.String("Mensaje enviado exitosamente")).
			Build())
		return
	}

	kind, ok := createFields[route]
	if !ok {
		writeError(w, http.StatusNotFound, "Endpoint no encontrado")
		return
	}
	record := s.newRecord(body, kind.fields, kind.dateField, kind.dateDefault)
	s.insert(route, record)
	writeJSON(w, http.StatusOK, ldvalue.ObjectBuild().
		Set("success", ldvalue.Bool(true)).
		Set(kind.item, record).
		Build())
}

func (s *Server) newRecord(body ldvalue.Value, fields []string, dateField string, dateDefault bool) ldvalue.Value {
	now := s.now()
	b := ldvalue.ObjectBuild().Set("id", ldvalue.String(uuid.NewString()))
	present := make(map[string]bool)
	for _, k := range body.Keys() {
		present[k] = true
	}
	for _, f := range fields {
		if present[f] {
			b = b.Set(f, body.GetByKey(f))
		}
	}

	b = b.Set(dateField, normalizeDate(body.GetByKey(dateField), now, dateDefault))
	return b.Set("fechaCreacion", ldvalue.String(formatTime(now))).Build()
}

func normalizeDate(v ldvalue.Value, now time.Time, useNow bool) ldvalue.Value {
	if useNow && (v.IsNull() || v.StringValue() == "") {
		return ldvalue.String(formatTime(now))
	}
	if v.Type() != ldvalue.StringType {
		return ldvalue.Null()
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, v.StringValue()); err == nil {
			return ldvalue.String(formatTime(t))
		}
	}
	return ldvalue.Null()
}

func (s *Server) insert(collection string, record ldvalue.Value) {
	s.lock.Lock()
	s.collections[collection] = append(s.collections[collection], record)
	s.lock.Unlock()
}

// seedIfEmpty must be called with the lock held.
func (s *Server) seedIfEmpty(collection string) {
	if len(s.collections[collection]) > 0 {
		return
	}
	now := s.now()
	switch collection {
	case Noticias:
		s.collections[collection] = demoNoticias(now)
	case Eventos:
		s.collections[collection] = demoEventos(now)
	case Miembros:
		s.collections[collection] = demoMiembros(now)
	}
	s.logger.WithField("collection", collection).Info("Inserted demo data")
}

// sorted must be called with the lock held. Null dates sort last when ascending and first when
// descending.
func (s *Server) sorted(collection string) []ldvalue.Value {
	order := listOrder[collection]
	items := append([]ldvalue.Value(nil), s.collections[collection]...)
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].GetByKey(order.field), items[j].GetByKey(order.field)
		if a.IsNull() || b.IsNull() {
			if a.IsNull() == b.IsNull() {
				return false
			}
			return b.IsNull() != order.descending
		}
		if order.descending {
			return a.StringValue() > b.StringValue()
		}
		return a.StringValue() < b.StringValue()
	})
	return items
}

func infoBody() ldvalue.Value {
	endpoints := make([]ldvalue.Value, 0, len(InfoEndpoints))
	for _, e := range InfoEndpoints {
		endpoints = append(endpoints, ldvalue.String(e))
	}
	return ldvalue.ObjectBuild().
		Set("message", ldvalue.String(InfoMessage)).
		Set("endpoints", ldvalue.ArrayOf(endpoints...)).
		Build()
}

// formatTime renders t in UTC with millisecond precision. Values in this form sort
// chronologically as strings.
func formatTime(t time.Time) string {
	return t.UTC().Format(dateFormatOut)
}

func writeJSON(w http.ResponseWriter, status int, body ldvalue.Value) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body.JSONString()))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ldvalue.ObjectBuild().Set("error", ldvalue.String(message)).Build())
}
