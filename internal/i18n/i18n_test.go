package i18n

import "testing"

func TestNewFallsBackToArabic(t *testing.T) {
	cases := []struct {
		code     string
		wantCode string
		wantDir  string
	}{
		{"ar", Arabic, DirectionRTL},
		{"en", English, DirectionLTR},
		{"en-US,en;q=0.9", English, DirectionLTR},
		{"fr", Arabic, DirectionRTL},
		{"", Arabic, DirectionRTL},
	}
	for _, c := range cases {
		l := New(c.code)
		if l.Code != c.wantCode || l.Direction != c.wantDir {
			t.Errorf("New(%q) = %+v, want {%s %s}", c.code, l, c.wantCode, c.wantDir)
		}
	}
}

func TestTranslate(t *testing.T) {
	ar := New(Arabic)
	if got := ar.T("offers.bookNow"); got != "احجز الآن" {
		t.Errorf("ar offers.bookNow = %q", got)
	}
	en := New(English)
	if got := en.T("offers.bookNow"); got != "Book Now" {
		t.Errorf("en offers.bookNow = %q", got)
	}
	if got := en.T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should echo, got %q", got)
	}
}

func TestToggled(t *testing.T) {
	l := New(Arabic).Toggled()
	if l.Code != English || l.Direction != DirectionLTR {
		t.Errorf("toggle ar -> %+v", l)
	}
	if back := l.Toggled(); back.Code != Arabic || back.Direction != DirectionRTL {
		t.Errorf("toggle en -> %+v", back)
	}
}

func TestBundlesCoverSameKeys(t *testing.T) {
	for key := range bundles[Arabic] {
		if _, ok := bundles[English][key]; !ok {
			t.Errorf("key %q missing from English bundle", key)
		}
	}
	for key := range bundles[English] {
		if _, ok := bundles[Arabic][key]; !ok {
			t.Errorf("key %q missing from Arabic bundle", key)
		}
	}
}
