package googleauth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jrsteele09/go-google-signin/googleauth"
	"github.com/jrsteele09/go-google-signin/oauthmodel"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type recordingNavigator struct {
	forms []*googleauth.AuthorizationForm
	err   error
}

func (n *recordingNavigator) Navigate(form *googleauth.AuthorizationForm) error {
	n.forms = append(n.forms, form)
	return n.err
}

func fullRequest() oauthmodel.AuthorizationRequest {
	return oauthmodel.AuthorizationRequest{
		ClientID:               "abc123",
		RedirectURI:            "https://app.example.com/cb",
		IsWebApp:               true,
		Scope:                  "email profile",
		IsAccessTypeOffline:    true,
		State:                  "xyz",
		IsIncludeGrantedScopes: true,
		LoginHint:              "user@example.com",
		Prompt:                 oauthmodel.PromptConsent,
	}
}

func TestStartAuth(t *testing.T) {
	t.Run("required only", func(t *testing.T) {
		nav := &recordingNavigator{}
		err := googleauth.StartAuth(nav, oauthmodel.AuthorizationRequest{
			ClientID:    "abc123",
			RedirectURI: "https://app.example.com/cb",
		})
		require.NoError(t, err)
		require.Len(t, nav.forms, 1)

		form := nav.forms[0]
		require.Equal(t, googleauth.AuthURL, form.Action)
		require.Equal(t, http.MethodPost, form.Method)
		require.Equal(t, []oauthmodel.Field{
			{Name: "client_id", Value: "abc123"},
			{Name: "redirect_uri", Value: "https://app.example.com/cb"},
			{Name: "response_type", Value: ""},
			{Name: "access_type", Value: "online"},
		}, form.Fields)
	})

	t.Run("all fields", func(t *testing.T) {
		nav := &recordingNavigator{}
		require.NoError(t, googleauth.StartAuth(nav, fullRequest()))
		require.Len(t, nav.forms, 1)
		require.Len(t, nav.forms[0].Fields, 9)

		value, ok := nav.forms[0].Get("include_granted_scopes")
		require.True(t, ok)
		require.Equal(t, "true", value)
	})

	t.Run("missing client id does not navigate", func(t *testing.T) {
		nav := &recordingNavigator{}
		err := googleauth.StartAuth(nav, oauthmodel.AuthorizationRequest{RedirectURI: "https://app.example.com/cb"})
		require.ErrorIs(t, err, oauthmodel.ErrMissingClientID)
		require.Empty(t, nav.forms)
	})

	t.Run("missing redirect uri does not navigate", func(t *testing.T) {
		nav := &recordingNavigator{}
		err := googleauth.StartAuth(nav, oauthmodel.AuthorizationRequest{ClientID: "abc123"})
		require.ErrorIs(t, err, oauthmodel.ErrMissingRedirectURI)
		require.Empty(t, nav.forms)
	})

	t.Run("navigator error is wrapped", func(t *testing.T) {
		navErr := errors.New("boom")
		nav := &recordingNavigator{err: navErr}
		err := googleauth.StartAuth(nav, fullRequest())
		require.ErrorIs(t, err, navErr)
	})

	t.Run("repeated calls build independent forms", func(t *testing.T) {
		nav := &recordingNavigator{}
		require.NoError(t, googleauth.StartAuth(nav, fullRequest()))
		req := fullRequest()
		req.State = "other"
		require.NoError(t, googleauth.StartAuth(nav, req))

		require.Len(t, nav.forms, 2)
		first, _ := nav.forms[0].Get("state")
		second, _ := nav.forms[1].Get("state")
		require.Equal(t, "xyz", first)
		require.Equal(t, "other", second)
	})
}

type renderedForm struct {
	attrs  map[string]string
	inputs []oauthmodel.Field
	types  []string
}

func attrMap(n *html.Node) map[string]string {
	m := map[string]string{}
	for _, a := range n.Attr {
		m[a.Key] = a.Val
	}
	return m
}

func parseRenderedForm(t *testing.T, body string) renderedForm {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	var forms []renderedForm
	var walk func(n *html.Node, current *renderedForm)
	walk = func(n *html.Node, current *renderedForm) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "form":
				forms = append(forms, renderedForm{attrs: attrMap(n)})
				current = &forms[len(forms)-1]
			case "input":
				if current != nil {
					attrs := attrMap(n)
					current.inputs = append(current.inputs, oauthmodel.Field{Name: attrs["name"], Value: attrs["value"]})
					current.types = append(current.types, attrs["type"])
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, current)
		}
	}
	walk(doc, nil)

	require.Len(t, forms, 1)
	return forms[0]
}

func TestFormPostNavigator(t *testing.T) {
	t.Run("required only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := googleauth.StartAuth(googleauth.NewFormPostNavigator(rec), oauthmodel.AuthorizationRequest{
			ClientID:    "abc123",
			RedirectURI: "https://app.example.com/cb",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		form := parseRenderedForm(t, rec.Body.String())
		require.Equal(t, googleauth.AuthURL, form.attrs["action"])
		require.Equal(t, "POST", form.attrs["method"])
		require.Contains(t, form.attrs["style"], "display:none")
		require.Equal(t, []oauthmodel.Field{
			{Name: "client_id", Value: "abc123"},
			{Name: "redirect_uri", Value: "https://app.example.com/cb"},
			{Name: "response_type", Value: ""},
			{Name: "access_type", Value: "online"},
		}, form.inputs)
		for _, typ := range form.types {
			require.Equal(t, "hidden", typ)
		}
		require.Contains(t, rec.Body.String(), ".submit()")
	})

	t.Run("all fields pass through unmodified", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := fullRequest()
		req.State = `a"b<c>&d`
		require.NoError(t, googleauth.StartAuth(googleauth.NewFormPostNavigator(rec), req))

		form := parseRenderedForm(t, rec.Body.String())
		require.Equal(t, req.Fields(), form.inputs)
	})

	t.Run("invalid request writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := googleauth.StartAuth(googleauth.NewFormPostNavigator(rec), oauthmodel.AuthorizationRequest{ClientID: "abc123"})
		require.ErrorIs(t, err, oauthmodel.ErrMissingRedirectURI)
		require.Zero(t, rec.Body.Len())
		require.Empty(t, rec.Header().Get("Content-Type"))
	})
}

func TestFormPostNavigator_NoScriptFallback(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, googleauth.StartAuth(googleauth.NewFormPostNavigator(rec), oauthmodel.AuthorizationRequest{
		ClientID:    "a",
		RedirectURI: "b",
	}))

	// With scripting off the noscript body is parsed as markup, as a browser would.
	doc, err := html.ParseWithOptions(strings.NewReader(rec.Body.String()), html.ParseOptionEnableScripting(false))
	require.NoError(t, err)

	var buttons []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "button" {
			buttons = append(buttons, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	require.Len(t, buttons, 1)

	button := buttons[0]
	require.Equal(t, "google-auth", attrMap(button)["form"])
	require.Equal(t, "submit", attrMap(button)["type"])

	inNoScript := false
	for p := button.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if p.Data == "noscript" {
			inNoScript = true
		}
		require.NotContains(t, strings.ReplaceAll(attrMap(p)["style"], " ", ""), "display:none", "button is inside hidden <%s>", p.Data)
	}
	require.True(t, inNoScript)
}

func TestRedirectNavigator(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/auth/google", nil)

		require.NoError(t, googleauth.StartAuth(googleauth.NewRedirectNavigator(rec, r), fullRequest()))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, "accounts.google.com", location.Host)
		require.Equal(t, "/o/oauth2/v2/auth", location.Path)
		require.Equal(t, fullRequest().Values(), location.Query())
	})

	t.Run("empty response type is kept", func(t *testing.T) {
		form, err := googleauth.NewAuthorizationForm(oauthmodel.AuthorizationRequest{
			ClientID:    "abc123",
			RedirectURI: "https://app.example.com/cb",
		})
		require.NoError(t, err)

		u, err := url.Parse(googleauth.AuthCodeURL(form))
		require.NoError(t, err)
		q := u.Query()
		require.Contains(t, q, "response_type")
		require.Equal(t, "", q.Get("response_type"))
		require.Equal(t, "online", q.Get("access_type"))
		require.NotContains(t, q, "scope")
		require.NotContains(t, q, "state")
		require.Len(t, q, 4)
	})
}

func TestNavigatorFor(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.IsType(t, &googleauth.FormPostNavigator{}, googleauth.NavigatorFor(googleauth.FormPostTransport, rec, r))
	require.IsType(t, &googleauth.RedirectNavigator{}, googleauth.NavigatorFor(googleauth.RedirectTransport, rec, r))
	require.IsType(t, &googleauth.FormPostNavigator{}, googleauth.NavigatorFor("", rec, r))
}

func TestEndpoint(t *testing.T) {
	require.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth", googleauth.Endpoint.AuthURL)
	require.Equal(t, "https://www.googleapis.com/oauth2/v4/token", googleauth.Endpoint.TokenURL)
	require.Equal(t, "https://www.googleapis.com/oauth2/v3/userinfo", googleauth.EmailURL)
}
