package filingkit

import (
	"errors"
	"testing"
)

func TestStyleSheetDefine(t *testing.T) {
	t.Parallel()

	t.Run("registers and looks up", func(t *testing.T) {
		t.Parallel()

		ss := NewStyleSheet()
		want := Style{Name: "body", FontFamily: FontTimes, FontSize: 12}
		if _, err := ss.Define(want); err != nil {
			t.Fatalf("Define() error = %v", err)
		}

		got, ok := ss.Lookup("body")
		if !ok {
			t.Fatal("Lookup(body) not found")
		}
		if got != want {
			t.Errorf("Lookup(body) = %+v, want %+v", got, want)
		}
		if ss.Len() != 1 {
			t.Errorf("Len() = %d, want 1", ss.Len())
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		t.Parallel()

		ss := NewStyleSheet()
		if _, err := ss.Define(Style{Name: "body", FontSize: 12}); err != nil {
			t.Fatalf("Define() error = %v", err)
		}

		_, err := ss.Define(Style{Name: "body", FontSize: 14})
		if !errors.Is(err, ErrDuplicateStyle) {
			t.Errorf("Define() error = %v, want ErrDuplicateStyle", err)
		}

		// First definition stays intact
		got, _ := ss.Lookup("body")
		if got.FontSize != 12 {
			t.Errorf("FontSize after duplicate = %v, want 12", got.FontSize)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		ss := NewStyleSheet()
		if _, err := ss.Define(Style{FontSize: 12}); err == nil {
			t.Error("Define() with empty name should fail")
		}
	})
}

func TestStyleSheetDefineFrom(t *testing.T) {
	t.Parallel()

	base := Style{
		Name:       "body",
		FontFamily: FontHelvetica,
		FontSize:   10.5,
		LineHeight: 14,
		Alignment:  AlignJustify,
		SpaceAfter: 6,
	}

	tests := []struct {
		name      string
		overrides Style
		check     func(t *testing.T, st Style)
	}{
		{
			name:      "inherits all unset fields",
			overrides: Style{},
			check: func(t *testing.T, st Style) {
				if st.FontFamily != FontHelvetica || st.FontSize != 10.5 || st.Alignment != AlignJustify {
					t.Errorf("inherited = %+v, want base attributes", st)
				}
			},
		},
		{
			name:      "override wins over base",
			overrides: Style{FontStyle: "B", FontSize: 14, Alignment: AlignCenter},
			check: func(t *testing.T, st Style) {
				if st.FontStyle != "B" || st.FontSize != 14 || st.Alignment != AlignCenter {
					t.Errorf("overrides not applied: %+v", st)
				}
				if st.FontFamily != FontHelvetica || st.SpaceAfter != 6 {
					t.Errorf("unset fields not inherited: %+v", st)
				}
			},
		},
		{
			name:      "indent fields",
			overrides: Style{LeftIndent: 40, BulletIndent: 20},
			check: func(t *testing.T, st Style) {
				if st.LeftIndent != 40 || st.BulletIndent != 20 {
					t.Errorf("indents = %v/%v, want 40/20", st.LeftIndent, st.BulletIndent)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ss := NewStyleSheet()
			if _, err := ss.Define(base); err != nil {
				t.Fatalf("Define(base) error = %v", err)
			}

			st, err := ss.DefineFrom("derived", "body", tt.overrides)
			if err != nil {
				t.Fatalf("DefineFrom() error = %v", err)
			}
			if st.Name != "derived" {
				t.Errorf("Name = %q, want derived", st.Name)
			}
			tt.check(t, st)

			// Registered under the new name
			if _, ok := ss.Lookup("derived"); !ok {
				t.Error("derived style not registered")
			}
		})
	}

	t.Run("unknown base", func(t *testing.T) {
		t.Parallel()

		ss := NewStyleSheet()
		_, err := ss.DefineFrom("derived", "missing", Style{})
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("DefineFrom() error = %v, want ErrUnknownStyle", err)
		}
	})

	t.Run("duplicate derived name", func(t *testing.T) {
		t.Parallel()

		ss := NewStyleSheet()
		if _, err := ss.Define(base); err != nil {
			t.Fatalf("Define(base) error = %v", err)
		}
		_, err := ss.DefineFrom("body", "body", Style{})
		if !errors.Is(err, ErrDuplicateStyle) {
			t.Errorf("DefineFrom() error = %v, want ErrDuplicateStyle", err)
		}
	})

	t.Run("inheritance is shallow", func(t *testing.T) {
		t.Parallel()

		ss := NewStyleSheet()
		if _, err := ss.Define(base); err != nil {
			t.Fatalf("Define(base) error = %v", err)
		}
		first, err := ss.DefineFrom("a", "body", Style{FontSize: 14})
		if err != nil {
			t.Fatalf("DefineFrom(a) error = %v", err)
		}
		second, err := ss.DefineFrom("b", "a", Style{})
		if err != nil {
			t.Fatalf("DefineFrom(b) error = %v", err)
		}
		if second.FontSize != first.FontSize {
			t.Errorf("chained FontSize = %v, want %v", second.FontSize, first.FontSize)
		}
	})
}

func TestStyleLeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style Style
		want  float64
	}{
		{"explicit line height", Style{FontSize: 12, LineHeight: 14}, 14},
		{"default from font size", Style{FontSize: 10}, 12},
		{"zero font size", Style{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.style.Leading(); got != tt.want {
				t.Errorf("Leading() = %v, want %v", got, tt.want)
			}
		})
	}
}
