package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// SessionCookie is the cookie carrying the wizard session ID.
const SessionCookie = "ts_session"

// formConfigure marks a post that carries the whole Configure form, so
// unchecked authority boxes can be told apart from absent ones.
const formConfigure = "configure"

// Form keys for the draft fields posted by the Configure step.
var formFields = []struct {
	key      string
	field    launch.Field
	checkbox bool
}{
	{"name", launch.FieldName, false},
	{"symbol", launch.FieldSymbol, false},
	{"supply", launch.FieldSupply, false},
	{"decimals", launch.FieldDecimals, false},
	{"freeze_authority", launch.FieldFreezeAuthority, true},
	{"mint_authority", launch.FieldMintAuthority, true},
	{"metadata_uri", launch.FieldMetadataURI, false},
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r)
	if r.URL.Query().Get("wizard") == "open" {
		id := s.session(w, r)
		view, _ := s.store.Get(id)
		data.Wizard = newWizardData(view, data.Skin.Name, false)
	}
	s.renderPage(w, r, data)
}

func (s *Server) handleWizard(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r)
	id := s.session(w, r)
	view, _ := s.store.Get(id)
	data.Wizard = newWizardData(view, data.Skin.Name, r.URL.Query().Get("blocked") == "1")
	s.renderPage(w, r, data)
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	id := s.session(w, r)
	var err error
	s.store.Update(id, func(sess *launch.Session) {
		// A single field=<name>&value=<v> pair may be posted on its own.
		if name := r.PostForm.Get("field"); name != "" {
			err = sess.SetField(name, r.PostForm.Get("value"))
			return
		}
		applyForm(sess, r.PostForm)
	})
	if errors.Is(err, launch.ErrUnknownField) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.redirectWizard(w, r, false)
}

// handleAdvance serves Continue and Proceed. Posted fields are applied
// before the step is checked.
func (s *Server) handleAdvance(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}
		id := s.session(w, r)
		var advanced bool
		s.store.Update(id, func(sess *launch.Session) {
			applyForm(sess, r.PostForm)
			advanced = sess.Advance()
		})
		s.metrics.RecordStep(action, advanced)
		s.redirectWizard(w, r, !advanced)
	}
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	id := s.session(w, r)
	var moved bool
	s.store.Update(id, func(sess *launch.Session) {
		moved = sess.Back()
	})
	s.metrics.RecordStep("back", moved)
	s.redirectWizard(w, r, false)
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	id := s.session(w, r)
	var (
		result    launch.Result
		launched  bool
		firstTime bool
	)
	s.store.Update(id, func(sess *launch.Session) {
		firstTime = !sess.Launched()
		result, launched = sess.Launch()
	})
	s.metrics.RecordStep("launch", launched)
	if launched && firstTime {
		s.metrics.RecordLaunch(result.Draft.FreezeAuthority, result.Draft.MintAuthority)
		s.log.Info("simulated launch",
			"symbol", result.Draft.Symbol,
			"address", result.Address,
			"fee_lamports", uint64(result.Fee),
		)
	}
	s.redirectWizard(w, r, false)
}

func (s *Server) handleAnother(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	id := s.session(w, r)
	s.store.Update(id, func(sess *launch.Session) {
		sess.Reset()
	})
	s.metrics.RecordStep("another", true)
	s.redirectWizard(w, r, false)
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		s.store.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.metrics.RecordStep("close", true)
	http.Redirect(w, r, "/?skin="+url.QueryEscape(string(s.skin(r).Name)), http.StatusSeeOther)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if isAPI(r) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// session returns the caller's live session ID, opening a new session when
// there is none. The cookie is rewritten on every call so its lifetime
// follows the store's sliding TTL.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	id := ""
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		if _, ok := s.store.Get(c.Value); ok {
			id = c.Value
		}
	}
	if id == "" {
		id = s.store.Create()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.Sessions.TTL.Seconds()),
	})
	return id
}

func (s *Server) redirectWizard(w http.ResponseWriter, r *http.Request, blocked bool) {
	q := url.Values{}
	q.Set("skin", string(s.skin(r).Name))
	if blocked {
		q.Set("blocked", "1")
	}
	http.Redirect(w, r, "/launch?"+q.Encode(), http.StatusSeeOther)
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// applyForm copies posted draft fields into the session. A post of the
// full Configure form treats a missing checkbox as unchecked.
func applyForm(sess *launch.Session, form url.Values) {
	full := form.Get("form") == formConfigure
	for _, f := range formFields {
		if form.Has(f.key) {
			sess.UpdateField(f.field, form.Get(f.key))
			continue
		}
		if f.checkbox && full {
			sess.UpdateField(f.field, "off")
		}
	}
}
