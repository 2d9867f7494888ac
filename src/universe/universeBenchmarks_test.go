package universe

import (
	"fmt"
	"testing"
)

var sizes = [][2]int{{40, 15}, {150, 150}, {500, 500}}

func Benchmark_Tick(b *testing.B) {
	for _, s := range sizes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			u, err := New(s[0], s[1], WithSeed(RandomSeed(1)))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Tick()
			}
		})
	}
}

func Benchmark_New(b *testing.B) {
	tmpl, _ := TemplateByName("sample")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := New(200, 200, WithSeed(EmptySeed), WithTemplate(tmpl)); err != nil {
			b.Fatal(err)
		}
	}
}
