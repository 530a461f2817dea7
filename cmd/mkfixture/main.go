// mkfixture generates a small synthetic practice snapshot as Parquet files,
// covering every classification path: paid tiers, zero-fee administrative and
// clinical work, cancellations, planned work, and heavy split fan-out.
// Usage: go run ./cmd/mkfixture --out testdata/snapshot --procedures 200
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/journeystats/internal/model"
)

var codes = []model.ProcedureCodeRow{
	{CodeNum: 1, ProcCode: "D0120", Descript: "periodic oral evaluation"},
	{CodeNum: 2, ProcCode: "D1110", Descript: "prophylaxis - adult"},
	{CodeNum: 3, ProcCode: "D2740", Descript: "crown - porcelain/ceramic"},
	{CodeNum: 4, ProcCode: "D7140", Descript: "extraction, erupted tooth"},
	{CodeNum: 5, ProcCode: "D9986", Descript: "missed appointment"},
	{CodeNum: 6, ProcCode: "D9995", Descript: "teledentistry - synchronous"},
	{CodeNum: 7, ProcCode: "~GRP~", Descript: "group note"},
	{CodeNum: 8, ProcCode: "D2950", Descript: "core buildup"},
}

func main() {
	out := flag.String("out", "testdata/snapshot", "output directory")
	procedures := flag.Int("procedures", 200, "number of procedures to generate")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	var procs []model.ProcedureRow
	var claims []model.ClaimProcRow
	var splits []model.PaySplitRow
	var adjs []model.AdjustmentRow

	var claimNum, splitNum, adjNum int64

	for i := 0; i < *procedures; i++ {
		procNum := int64(i + 1)
		day := rng.Intn(28) + 1
		month := rng.Intn(12) + 1
		date := fmt.Sprintf("2025-%02d-%02d", month, day)

		p := model.ProcedureRow{
			ProcNum:    procNum,
			PatNum:     int64(rng.Intn(50) + 1),
			ProcStatus: int32(model.StatusComplete),
			ProcDate:   date,
		}

		switch i % 8 {
		case 0: // fully insurance-paid crown
			p.CodeNum = 3
			p.ProcFee = 900
			claimNum++
			claims = append(claims, model.ClaimProcRow{ClaimProcNum: claimNum, ProcNum: procNum, Status: 1, InsPayAmt: 900})
		case 1: // mixed funding right at the 95% boundary
			p.CodeNum = 8
			p.ProcFee = 200
			claimNum++
			claims = append(claims, model.ClaimProcRow{ClaimProcNum: claimNum, ProcNum: procNum, Status: 1, InsPayAmt: 100})
			splitNum++
			splits = append(splits, model.PaySplitRow{SplitNum: splitNum, ProcNum: procNum, PayNum: procNum, SplitAmt: 90})
		case 2: // underpaid extraction with a write-off adjustment
			p.CodeNum = 4
			p.ProcFee = 300
			splitNum++
			splits = append(splits, model.PaySplitRow{SplitNum: splitNum, ProcNum: procNum, PayNum: procNum, SplitAmt: 150})
			adjNum++
			adjs = append(adjs, model.AdjustmentRow{AdjNum: adjNum, ProcNum: procNum, AdjType: 1, AdjAmt: -150})
		case 3: // zero-fee administrative evaluation
			p.CodeNum = 1
			p.ProcFee = 0
		case 4: // zero-fee clinical (bundled prophylaxis)
			p.CodeNum = 2
			p.ProcFee = 0
		case 5: // missed appointment marker
			p.CodeNum = 5
			p.ProcFee = 50
		case 6: // still in planning
			p.CodeNum = 3
			p.ProcFee = 1100
			p.ProcStatus = int32(model.StatusTreatmentPlanned)
		case 7: // direct-paid with heavy split fan-out
			p.CodeNum = 8
			p.ProcFee = 400
			n := 16 + rng.Intn(5)
			for j := 0; j < n; j++ {
				splitNum++
				splits = append(splits, model.PaySplitRow{SplitNum: splitNum, ProcNum: procNum, PayNum: procNum, SplitAmt: 400 / float64(n)})
			}
		}

		procs = append(procs, p)
	}

	writeFile(filepath.Join(*out, "procedurecode.parquet"), codes)
	writeFile(filepath.Join(*out, "procedurelog.parquet"), procs)
	writeFile(filepath.Join(*out, "claimproc.parquet"), claims)
	writeFile(filepath.Join(*out, "paysplit.parquet"), splits)
	writeFile(filepath.Join(*out, "adjustment.parquet"), adjs)

	fmt.Printf("Wrote snapshot to %s: %d procedures, %d claims, %d splits, %d adjustments\n",
		*out, len(procs), len(claims), len(splits), len(adjs))
}

func writeFile[T any](path string, rows []T) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	w := goparquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close %s: %v\n", path, err)
		os.Exit(1)
	}
}
