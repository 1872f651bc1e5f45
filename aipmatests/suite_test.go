package aipmatests

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mateomaralcantara/aipma/framework"
	"github.com/mateomaralcantara/aipma/internal/fakeapi"

	"github.com/google/uuid"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func runSuite(t *testing.T, handler http.Handler, filter framework.Filter) []framework.Outcome {
	var outcomes []framework.Outcome
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		harness := framework.NewTestHarness(server.URL+"/api", 2*time.Second, nil)
		recorder := framework.NewRecorder(nil)
		summary := RunTestSuite(context.Background(), harness, recorder, filter, nil)
		outcomes = recorder.Outcomes()
		assert.Equal(t, len(outcomes), summary.Total)
	})
	return outcomes
}

func runOne(t *testing.T, name string, handler http.Handler) framework.Outcome {
	outcomes := runSuite(t, handler, func(n string) bool { return n == name })
	require.Len(t, outcomes, 1)
	require.Equal(t, name, outcomes[0].TestName)
	return outcomes[0]
}

func jsonHandler(body ldvalue.Value) http.Handler {
	return httphelpers.HandlerWithJSONResponse(body, nil)
}

func listBody(field string, items ...ldvalue.Value) ldvalue.Value {
	return ldvalue.ObjectBuild().Set(field, ldvalue.ArrayOf(items...)).Build()
}

func article(titulo string) ldvalue.ObjectBuilder {
	return ldvalue.ObjectBuild().
		Set("id", ldvalue.String(uuid.NewString())).
		Set("titulo", ldvalue.String(titulo)).
		Set("resumen", ldvalue.String("")).
		Set("contenido", ldvalue.String("")).
		Set("categoria", ldvalue.String("Ética")).
		Set("autor", ldvalue.String("María González")).
		Set("fecha", ldvalue.String("2024-01-15T00:00:00.000Z"))
}

func event(id, fecha string) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("id", ldvalue.String(id)).
		Set("titulo", ldvalue.String("Taller de Verificación de Hechos")).
		Set("descripcion", ldvalue.String("Seminario intensivo")).
		Set("fecha", ldvalue.String(fecha)).
		Set("ubicacion", ldvalue.String("Online")).
		Set("tipo", ldvalue.String("taller")).
		Set("capacidad", ldvalue.Int(100)).
		Build()
}

func member(id string) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("id", ldvalue.String(id)).
		Set("nombre", ldvalue.String("Sarah Johnson")).
		Set("organizacion", ldvalue.String("International Press Alliance")).
		Set("especialidad", ldvalue.String("Periodismo Digital")).
		Set("pais", ldvalue.String("Estados Unidos")).
		Set("tipo", ldvalue.String("editor")).
		Set("fechaIngreso", ldvalue.String("2023-03-20T00:00:00.000Z")).
		Build()
}

func TestAllTestNames(t *testing.T) {
	assert.Equal(t, []string{
		"API Info Endpoint",
		"GET Noticias",
		"GET Eventos",
		"GET Miembros",
		"POST Contacto",
		"POST Noticias",
		"POST Eventos",
		"POST Miembros",
		"Error Handling - Invalid Endpoint",
		"Error Handling - Malformed Request",
	}, AllTestNames())
}

func TestFullSuitePassesAgainstFakeAPI(t *testing.T) {
	api := fakeapi.New(true, nil)
	outcomes := runSuite(t, api, nil)

	require.Len(t, outcomes, len(AllTestNames()))
	for i, o := range outcomes {
		assert.Equal(t, AllTestNames()[i], o.TestName)
		assert.True(t, o.Success, "%s: %s (%s)", o.TestName, o.Message, o.Details)
	}
	assert.True(t, framework.Summarize(outcomes).OK())

	assert.Len(t, api.Items(fakeapi.Noticias), 4)
	assert.Len(t, api.Items(fakeapi.Mensajes), 2)
}

func TestFullSuiteSuccessMessages(t *testing.T) {
	outcomes := runSuite(t, fakeapi.New(true, nil), nil)
	require.Len(t, outcomes, 10)

	assert.Equal(t, "API info endpoint working correctly", outcomes[0].Message)
	assert.Equal(t, "Retrieved 3 news articles with proper Spanish content and UUID format", outcomes[1].Message)
	assert.Equal(t, "Retrieved 3 events with proper Spanish content, UUID format, and valid dates", outcomes[2].Message)
	assert.Equal(t, "Retrieved 4 members with UUID format and valid dates", outcomes[3].Message)
	assert.Equal(t, "Contact form submission successful", outcomes[4].Message)
	assert.Equal(t, "Created article successfully with proper UUID and all required fields", outcomes[5].Message)
	assert.Equal(t, "Malformed request handled appropriately (HTTP 200)", outcomes[9].Message)
}

func TestUnreachableAPIFailsEveryTest(t *testing.T) {
	var url string
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		url = server.URL
	})
	harness := framework.NewTestHarness(url+"/api", time.Second, nil)
	recorder := framework.NewRecorder(nil)

	summary := RunTestSuite(context.Background(), harness, recorder, nil, nil)

	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 10, summary.Failed)
	for _, o := range recorder.Outcomes() {
		assert.True(t, strings.HasPrefix(o.Message, "Request failed: "), o.Message)
	}
	assert.False(t, summary.OK())
}

func TestFilterSelectsTests(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^GET"))
	require.NoError(t, filters.MustNotMatch.Set("Miembros"))

	outcomes := runSuite(t, fakeapi.New(true, nil), filters.AsFilter)

	require.Len(t, outcomes, 2)
	assert.Equal(t, "GET Noticias", outcomes[0].TestName)
	assert.Equal(t, "GET Eventos", outcomes[1].TestName)
}

func TestAPIInfo(t *testing.T) {
	name := "API Info Endpoint"

	t.Run("missing endpoint", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().
			Set("message", ldvalue.String("ok")).
			Set("endpoints", ldvalue.ArrayOf(
				ldvalue.String("/api/noticias"), ldvalue.String("/api/eventos"), ldvalue.String("/api/miembros"))).
			Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Missing expected endpoints: [/api/contacto]", o.Message)
	})

	t.Run("endpoints not an array", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().
			Set("message", ldvalue.String("ok")).
			Set("endpoints", ldvalue.String("/api/noticias")).
			Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Missing expected endpoints: [/api/noticias /api/eventos /api/miembros /api/contacto]", o.Message)
	})

	t.Run("missing message", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().
			Set("endpoints", ldvalue.ArrayOf()).
			Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Response missing required fields (message, endpoints)", o.Message)
	})

	t.Run("server error", func(t *testing.T) {
		o := runOne(t, name, httphelpers.HandlerWithResponse(500, nil, []byte(`{"error":"Error interno del servidor"}`)))
		assert.False(t, o.Success)
		assert.Equal(t, "HTTP 500", o.Message)
		assert.Equal(t, `{"error":"Error interno del servidor"}`, o.Details)
	})

	t.Run("not JSON", func(t *testing.T) {
		o := runOne(t, name, httphelpers.HandlerWithResponse(200, nil, []byte("<html></html>")))
		assert.False(t, o.Success)
		assert.True(t, strings.HasPrefix(o.Message, "Invalid JSON response: "), o.Message)
	})
}

func TestGetNoticias(t *testing.T) {
	name := "GET Noticias"

	t.Run("Spanish article", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("noticias",
			article("Nueva Iniciativa Global para la Ética Periodística").Build())))
		assert.True(t, o.Success, o.Message)
		assert.Equal(t, "Retrieved 1 news articles with proper Spanish content and UUID format", o.Message)
	})

	t.Run("empty list", func(t *testing.T) {
		o := runOne(t, name, fakeapi.New(false, nil))
		assert.False(t, o.Success)
		assert.Equal(t, "No articles found", o.Message)
		assert.Equal(t, "Empty noticias array", o.Details)
	})

	t.Run("English article", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("noticias",
			article("New Global Initiative for Journalism").Build())))
		assert.False(t, o.Success)
		assert.Equal(t, "Data validation issues: Spanish content not detected", o.Message)
	})

	t.Run("several issues", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("noticias",
			article("Hello").Set("id", ldvalue.String("not-a-uuid")).Build())))
		assert.False(t, o.Success)
		assert.Equal(t, "Data validation issues: Spanish content not detected, Invalid UUID format", o.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		item := ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Ética")).
			Set("resumen", ldvalue.String("")).
			Set("contenido", ldvalue.String("")).
			Set("categoria", ldvalue.String("")).
			Build()
		o := runOne(t, name, jsonHandler(listBody("noticias", item)))
		assert.False(t, o.Success)
		assert.Equal(t, "Missing required fields: [autor fecha]", o.Message)
		assert.Equal(t, "Available fields: [categoria contenido id resumen titulo]", o.Details)
	})

	t.Run("list not an array", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().Set("noticias", ldvalue.String("none")).Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Invalid response structure", o.Message)
		assert.Equal(t, "Expected 'noticias' array, got: string", o.Details)
	})

	t.Run("body not an object", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ArrayOf()))
		assert.False(t, o.Success)
		assert.Equal(t, "Invalid response structure", o.Message)
	})
}

func TestGetEventos(t *testing.T) {
	name := "GET Eventos"

	t.Run("valid event", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("eventos", event(uuid.NewString(), "2024-02-15T00:00:00.000Z"))))
		assert.True(t, o.Success, o.Message)
	})

	t.Run("invalid date", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("eventos", event(uuid.NewString(), "15 de febrero"))))
		assert.False(t, o.Success)
		assert.Equal(t, "Data validation issues: Invalid date format", o.Message)
	})

	t.Run("only first item is inspected", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("eventos",
			event(uuid.NewString(), "2024-02-15"), event("bad", "bad"))))
		assert.True(t, o.Success, o.Message)
		assert.Equal(t, "Retrieved 2 events with proper Spanish content, UUID format, and valid dates", o.Message)
	})
}

func TestGetMiembros(t *testing.T) {
	name := "GET Miembros"

	t.Run("valid member", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("miembros", member(uuid.NewString()))))
		assert.True(t, o.Success, o.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(listBody("miembros", member("12345"))))
		assert.False(t, o.Success)
		assert.Equal(t, "Data validation issues: Invalid UUID format", o.Message)
	})
}

func TestPostContacto(t *testing.T) {
	name := "POST Contacto"

	t.Run("sends the contact form", func(t *testing.T) {
		handler, requestsCh := httphelpers.RecordingHandler(jsonHandler(ldvalue.ObjectBuild().
			Set("success", ldvalue.Bool(true)).
			Set("message", ldvalue.String("Mensaje enviado exitosamente")).
			Build()))
		o := runOne(t, name, handler)
		assert.True(t, o.Success, o.Message)
		assert.Equal(t, "Response: Mensaje enviado exitosamente", o.Details)

		r := <-requestsCh
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "/api/contacto", r.Request.URL.Path)
		var sent ldvalue.Value
		require.NoError(t, sent.UnmarshalJSON(r.Body))
		assert.Equal(t, []string{"email", "mensaje", "nombre"}, framework.FieldNames(sent))
	})

	t.Run("success is not a boolean", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().
			Set("success", ldvalue.String("true")).
			Set("message", ldvalue.String("ok")).
			Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Invalid response structure", o.Message)
	})
}

func TestPostNoticias(t *testing.T) {
	name := "POST Noticias"

	t.Run("created record is missing the creation timestamp", func(t *testing.T) {
		echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			created := article("Nuevo Protocolo").Build()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(ldvalue.ObjectBuild().
				Set("success", ldvalue.Bool(true)).
				Set("noticia", created).
				Build().JSONString()))
		})
		o := runOne(t, name, echo)
		assert.False(t, o.Success)
		assert.Equal(t, "Data validation issues: Missing fields: [fechaCreacion]", o.Message)
	})

	t.Run("unsuccessful response", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().Set("success", ldvalue.Bool(false)).Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Invalid response structure", o.Message)
		assert.True(t, strings.HasPrefix(o.Details, "Expected success=true and noticia"), o.Details)
	})

	t.Run("not found", func(t *testing.T) {
		o := runOne(t, name, httphelpers.HandlerWithStatus(404))
		assert.False(t, o.Success)
		assert.Equal(t, "HTTP 404", o.Message)
	})
}

func TestPostEventosRejectsNonUUID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sent ldvalue.Value
		data, _ := ioutil.ReadAll(r.Body)
		_ = sent.UnmarshalJSON(data)
		b := ldvalue.ObjectBuild()
		for _, k := range sent.Keys() {
			b = b.Set(k, sent.GetByKey(k))
		}
		created := b.Set("id", ldvalue.Int(7)).Set("fechaCreacion", ldvalue.String("2025-01-01T00:00:00Z")).Build()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ldvalue.ObjectBuild().
			Set("success", ldvalue.Bool(true)).
			Set("evento", created).
			Build().JSONString()))
	})
	o := runOne(t, "POST Eventos", handler)
	assert.False(t, o.Success)
	assert.Equal(t, "Data validation issues: Invalid UUID format", o.Message)
}

func TestInvalidEndpoint(t *testing.T) {
	name := "Error Handling - Invalid Endpoint"

	t.Run("info body", func(t *testing.T) {
		o := runOne(t, name, fakeapi.New(false, nil))
		assert.True(t, o.Success, o.Message)
		assert.Equal(t, "Invalid endpoint returns API info correctly", o.Message)
	})

	t.Run("404", func(t *testing.T) {
		o := runOne(t, name, httphelpers.HandlerWithResponse(404, nil, []byte("Not Found")))
		assert.False(t, o.Success)
		assert.Equal(t, "Unexpected status code: 404", o.Message)
		assert.Equal(t, "Not Found", o.Details)
	})

	t.Run("wrong body", func(t *testing.T) {
		o := runOne(t, name, jsonHandler(ldvalue.ObjectBuild().Set("error", ldvalue.String("nope")).Build()))
		assert.False(t, o.Success)
		assert.Equal(t, "Invalid endpoint response structure incorrect", o.Message)
	})
}

func TestMalformedRequest(t *testing.T) {
	name := "Error Handling - Malformed Request"

	for _, status := range []int{200, 400, 422} {
		o := runOne(t, name, httphelpers.HandlerWithResponse(status, nil, []byte(`{"error":"datos inválidos"}`)))
		assert.True(t, o.Success, "status %d: %s", status, o.Message)
		assert.Equal(t, `{"error":"datos inválidos"}`, o.Details)
	}

	o := runOne(t, name, httphelpers.HandlerWithStatus(400))
	assert.True(t, o.Success)
	assert.Equal(t, "No response body", o.Details)

	o = runOne(t, name, httphelpers.HandlerWithResponse(500, nil, []byte(`{"error":"Error interno del servidor"}`)))
	assert.False(t, o.Success)
	assert.Equal(t, "Unexpected status code for malformed request: 500", o.Message)

	long := strings.Repeat("x", 500)
	o = runOne(t, name, httphelpers.HandlerWithResponse(422, nil, []byte(long)))
	assert.Len(t, o.Details, 200)

	accented := strings.Repeat("x", 199) + "ó" + "n inválida"
	o = runOne(t, name, httphelpers.HandlerWithResponse(400, nil, []byte(accented)))
	assert.True(t, o.Success)
	assert.True(t, utf8.ValidString(o.Details))
	assert.Equal(t, strings.Repeat("x", 199)+"ó", o.Details)
}
