package waiter

import (
	"testing"
)

func Test_sessionOptions_apply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		opts []SessionOption
		want sessionOptions
	}{
		{
			name: "defaults untouched",
			opts: nil,
			want: sessionOptions{headless: true},
		},
		{
			name: "headful",
			opts: []SessionOption{WithHeadless(false)},
			want: sessionOptions{headless: false},
		},
		{
			name: "browser binary",
			opts: []SessionOption{WithBrowserBin("/usr/bin/chromium")},
			want: sessionOptions{headless: true, bin: "/usr/bin/chromium"},
		},
		{
			name: "empty binary ignored",
			opts: []SessionOption{WithBrowserBin("")},
			want: sessionOptions{headless: true},
		},
		{
			name: "user agent",
			opts: []SessionOption{WithUserAgent("Mozilla/5.0 test")},
			want: sessionOptions{headless: true, userAgent: "Mozilla/5.0 test"},
		},
		{
			name: "empty user agent ignored",
			opts: []SessionOption{WithUserAgent("")},
			want: sessionOptions{headless: true},
		},
		{
			name: "combined",
			opts: []SessionOption{
				WithHeadless(false),
				WithBrowserBin("/opt/chrome"),
				WithUserAgent("agent"),
			},
			want: sessionOptions{bin: "/opt/chrome", userAgent: "agent"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sessionOptions{headless: true}
			got.apply(tt.opts)
			if got != tt.want {
				t.Errorf("apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
