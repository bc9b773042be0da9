package assets

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// domStub is the smallest DOM the page script touches.
const domStub = `
var window = this;
var listeners = {};
var docListeners = {};
var posted = [];
var resizes = 0;
var observing = false;
window.addEventListener = function (t, f) { (listeners[t] = listeners[t] || []).push(f); };
window.dispatchEvent = function (e) {
  if (e.type === "resize") { resizes++; }
  (listeners[e.type] || []).forEach(function (f) { f(e); });
  return true;
};
window.__focusmodePost = function (p) { posted.push(JSON.parse(p)); };
window.location = { href: "https://www.youtube.com/watch?v=abc" };
function ClassList() { this.set = {}; }
ClassList.prototype.toggle = function (c, on) { if (on) { this.set[c] = true; } else { delete this.set[c]; } };
ClassList.prototype.contains = function (c) { return !!this.set[c]; };
var video = null;
var document = {
  body: { classList: new ClassList() },
  documentElement: { classList: new ClassList() },
  addEventListener: function (t, f) { (docListeners[t] = docListeners[t] || []).push(f); },
  querySelector: function () { return video; },
};
function Event(t) { this.type = t; }
function MutationObserver(cb) { this.cb = cb; }
MutationObserver.prototype.observe = function () { observing = true; window.__mutate = this.cb; };
MutationObserver.prototype.disconnect = function () { observing = false; };
`

func runPageScript(t *testing.T) *sobek.Runtime {
	t.Helper()

	src, err := PageScript(ScriptConfig{
		Handler:       "focusmode",
		Classes:       map[string]string{"focus-mode": "fm-on", "no-scroll": "fm-lock"},
		VideoSelector: "video",
		Keys: []ScriptKey{
			{Code: "KeyF", Alt: true, PreventDefault: true},
			{Code: "Escape"},
		},
	})
	require.NoError(t, err)

	vm := sobek.New()
	_, err = vm.RunString(domStub)
	require.NoError(t, err)
	_, err = vm.RunScript("focus.js", src)
	require.NoError(t, err)
	return vm
}

func eval(t *testing.T, vm *sobek.Runtime, expr string) sobek.Value {
	t.Helper()
	v, err := vm.RunString(expr)
	require.NoError(t, err)
	return v
}

func TestRawScriptCompiles(t *testing.T) {
	_, err := sobek.Compile("focus.js", RawScript(), false)
	require.NoError(t, err)
}

func TestPageScript_ReportsReady(t *testing.T) {
	vm := runPageScript(t)

	assert.Equal(t, int64(1), eval(t, vm, "posted.length").ToInteger())
	assert.Equal(t, "ready", eval(t, vm, "posted[0].kind").String())
	assert.False(t, eval(t, vm, "posted[0].present").ToBoolean())
}

func TestPageScript_Markers(t *testing.T) {
	vm := runPageScript(t)

	assert.True(t, eval(t, vm, `window.__focusmode.setMarker("focus-mode", true)`).ToBoolean())
	assert.True(t, eval(t, vm, `document.body.classList.contains("fm-on")`).ToBoolean())
	assert.True(t, eval(t, vm, `window.__focusmode.hasMarker("focus-mode")`).ToBoolean())

	eval(t, vm, `window.__focusmode.setMarker("focus-mode", false)`)
	assert.False(t, eval(t, vm, `document.body.classList.contains("fm-on")`).ToBoolean())

	assert.False(t, eval(t, vm, `window.__focusmode.setMarker("unknown", true)`).ToBoolean())

	eval(t, vm, `window.__focusmode.relayout()`)
	assert.Equal(t, int64(1), eval(t, vm, "resizes").ToInteger())
}

func TestPageScript_ObserveStructure(t *testing.T) {
	vm := runPageScript(t)

	eval(t, vm, `window.__focusmode.observe(true)`)
	assert.True(t, eval(t, vm, "observing").ToBoolean())

	eval(t, vm, `video = { paused: false, ended: false }; window.__mutate([]);`)
	assert.Equal(t, "structure", eval(t, vm, "posted[posted.length-1].kind").String())
	assert.True(t, eval(t, vm, "posted[posted.length-1].playing").ToBoolean())

	eval(t, vm, `window.__focusmode.observe(false)`)
	assert.False(t, eval(t, vm, "observing").ToBoolean())
}

func TestPageScript_Keys(t *testing.T) {
	vm := runPageScript(t)

	eval(t, vm, `
var ev = { code: "KeyF", altKey: true, ctrlKey: false, shiftKey: false, metaKey: false,
           prevented: false, preventDefault: function () { this.prevented = true; } };
listeners.keydown[0](ev);
`)
	assert.True(t, eval(t, vm, "ev.prevented").ToBoolean())
	assert.Equal(t, "key", eval(t, vm, "posted[posted.length-1].kind").String())
	assert.Equal(t, "KeyF", eval(t, vm, "posted[posted.length-1].code").String())

	before := eval(t, vm, "posted.length").ToInteger()
	eval(t, vm, `listeners.keydown[0]({ code: "KeyG", altKey: true, ctrlKey: false, shiftKey: false, metaKey: false })`)
	assert.Equal(t, before, eval(t, vm, "posted.length").ToInteger(), "unbound keys are not forwarded")

	eval(t, vm, `
var esc = { code: "Escape", altKey: false, ctrlKey: false, shiftKey: false, metaKey: false,
            prevented: false, preventDefault: function () { this.prevented = true; } };
listeners.keydown[0](esc);
`)
	assert.False(t, eval(t, vm, "esc.prevented").ToBoolean())
	assert.Equal(t, "Escape", eval(t, vm, "posted[posted.length-1].code").String())
}

func TestPageScript_PlayOnlyFromVideo(t *testing.T) {
	vm := runPageScript(t)

	before := eval(t, vm, "posted.length").ToInteger()
	eval(t, vm, `docListeners.play[0]({ target: { tagName: "AUDIO" } })`)
	assert.Equal(t, before, eval(t, vm, "posted.length").ToInteger())

	eval(t, vm, `video = { paused: false, ended: false }; docListeners.play[0]({ target: { tagName: "VIDEO" } })`)
	assert.Equal(t, "play", eval(t, vm, "posted[posted.length-1].kind").String())
}

func TestPageScript_PauseAndEndReportStoppedPlayback(t *testing.T) {
	vm := runPageScript(t)

	eval(t, vm, `video = { paused: true, ended: false }; docListeners.pause[0]({ target: { tagName: "VIDEO" } })`)
	assert.Equal(t, "pause", eval(t, vm, "posted[posted.length-1].kind").String())
	assert.True(t, eval(t, vm, "posted[posted.length-1].present").ToBoolean())
	assert.False(t, eval(t, vm, "posted[posted.length-1].playing").ToBoolean())

	eval(t, vm, `video = { paused: false, ended: true }; docListeners.ended[0]({ target: { tagName: "VIDEO" } })`)
	assert.Equal(t, "pause", eval(t, vm, "posted[posted.length-1].kind").String())
	assert.False(t, eval(t, vm, "posted[posted.length-1].playing").ToBoolean())

	before := eval(t, vm, "posted.length").ToInteger()
	eval(t, vm, `docListeners.pause[0]({ target: { tagName: "AUDIO" } })`)
	assert.Equal(t, before, eval(t, vm, "posted.length").ToInteger())
}

func TestPageScript_LocationChange(t *testing.T) {
	vm := runPageScript(t)

	eval(t, vm, `window.location.href = "https://www.youtube.com/watch?v=xyz"; docListeners["yt-navigate-finish"][0]({})`)
	assert.Equal(t, "location", eval(t, vm, "posted[posted.length-1].kind").String())
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", eval(t, vm, "posted[posted.length-1].url").String())
}

func TestStylesheet_RewritesClasses(t *testing.T) {
	css := Stylesheet("fm-on", "fm-lock")

	assert.Contains(t, css, "body.fm-on.fm-lock")
	assert.NotContains(t, css, "uw-focus-mode")
	assert.NotContains(t, css, "uw-no-scroll")
}
