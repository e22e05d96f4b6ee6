// Command strokecompare runs the comparison pipeline offline against two
// recording files and prints the coaching report. With -out it also
// exports PNG plots of the four comparison curves.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/volley-llc/volley-shot-analysis/internal/analysis"
	"github.com/volley-llc/volley-shot-analysis/internal/config"
	"github.com/volley-llc/volley-shot-analysis/internal/pose"
	"github.com/volley-llc/volley-shot-analysis/internal/report"
)

func main() {
	proPath := flag.String("pro", "", "Reference recording JSON file")
	traineePath := flag.String("trainee", "", "Trainee recording JSON file")
	outDir := flag.String("out", "", "Optional directory for PNG plots")
	configPath := flag.String("config", "", "Optional analysis config JSON file")
	flag.Parse()

	if *proPath == "" || *traineePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.DefaultAnalysisConfig()
	if *configPath != "" {
		loaded, err := config.LoadAnalysisConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	proFrames, err := loadRecording(*proPath)
	if err != nil {
		log.Fatalf("failed to load pro recording: %v", err)
	}
	traineeFrames, err := loadRecording(*traineePath)
	if err != nil {
		log.Fatalf("failed to load trainee recording: %v", err)
	}

	result := analysis.Analyze(proFrames, traineeFrames, cfg)
	printResult(result)

	if *outDir != "" {
		paths, err := report.SaveComparisonPNGs(result, *outDir)
		if err != nil {
			log.Fatalf("failed to export plots: %v", err)
		}
		for _, p := range paths {
			fmt.Printf("wrote %s\n", p)
		}
	}
}

func loadRecording(path string) ([]pose.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return pose.ParseRecording(data)
}

func printResult(res analysis.Result) {
	if res.Demo {
		fmt.Println("NOTE: insufficient recording data; showing demo comparison")
	}

	stats := res.Stats.Formatted()
	fmt.Println("Statistics (trainee vs pro):")
	fmt.Printf("  stroke duration  %s s vs %s s (diff %s ms)\n",
		stats.StrokeDuration.Trainee, stats.StrokeDuration.Pro, stats.StrokeDuration.Difference)
	fmt.Printf("  peak rotation    %s vs %s (diff %s)\n",
		stats.PeakRotation.Trainee, stats.PeakRotation.Pro, stats.PeakRotation.Difference)
	fmt.Printf("  peak extension   %s vs %s (diff %s)\n",
		stats.PeakExtension.Trainee, stats.PeakExtension.Pro, stats.PeakExtension.Difference)
	fmt.Printf("  wrist drop       %s vs %s (diff %s)\n",
		stats.WristDrop.Trainee, stats.WristDrop.Pro, stats.WristDrop.Difference)

	fmt.Printf("\nOverall score: %d/100\n", res.Report.OverallScore)

	if len(res.Report.Priorities) > 0 {
		fmt.Println("\nPriorities:")
		for _, p := range res.Report.Priorities {
			fmt.Printf("  [%s] %s: %s\n", p.Severity, p.Issue, p.Detail)
			fmt.Printf("         %s\n", p.Improvement)
		}
	}

	if len(res.Report.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range res.Report.Strengths {
			fmt.Printf("  %s\n", s.Note)
		}
	}

	if len(res.Report.Drills) > 0 {
		fmt.Println("\nDrills:")
		for _, d := range res.Report.Drills {
			fmt.Printf("  %s (%s): %s\n", d.Name, d.Reps, d.Description)
		}
	}
}
