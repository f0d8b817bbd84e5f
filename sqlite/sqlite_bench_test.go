package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkSaveResult measures a full run over four years of monthly archives.
// The second pass replaces every row, as a re-run does.
func BenchmarkSaveResult(b *testing.B) {
	b.Run("insert", func(b *testing.B) {
		benchmarkSaveResults(b, 1)
	})

	b.Run("upsert", func(b *testing.B) {
		benchmarkSaveResults(b, 2)
	})
}

func benchmarkSaveResults(b *testing.B, passes int) {
	b.Helper()

	periods := archtext.PeriodRange(archtext.Period{Year: 2020, Month: 1}, archtext.Period{Year: 2023, Month: 12})
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		db := sqlite.NewDB(filepath.Join(b.TempDir(), fmt.Sprintf("bench%d.db", i)))
		require.NoError(b, db.Open())
		svc := sqlite.NewResultService(db)

		b.StartTimer()

		for range passes {
			for _, p := range periods {
				content := fmt.Sprintf("=== ARTÍCULO 1: Nota de %s ===\n\n--- CONTENIDO ---\nTexto de la nota del mes %d.", p, p.Month)
				r := archtext.NewContentResult(p, p.SourceURL(""), content, time.Now())
				if err := svc.SaveResult(ctx, r); err != nil {
					b.Fatal(err)
				}
			}
		}

		b.StopTimer()
		db.Close()
	}
}
