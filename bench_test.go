package keyhole

import "testing"

var benchSink string

func BenchmarkRender(b *testing.B) {
	sub := Text("SubKey(3)")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = DecodePending(0x0007_0042_0000_0063, sub).Render()
	}
}

func BenchmarkRenderCorrupt(b *testing.B) {
	sub := Text("None")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = DecodePending(0xFFFF_FFFF_FFFF_FFFF, sub).Render()
	}
}
