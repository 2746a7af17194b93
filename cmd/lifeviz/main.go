package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lifeviz/lifeviz/internal/calculation"
	"github.com/lifeviz/lifeviz/internal/config"
	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/lifeviz/lifeviz/internal/lifedata"
	"github.com/lifeviz/lifeviz/internal/output"
	"github.com/lifeviz/lifeviz/internal/server"
	"github.com/lifeviz/lifeviz/internal/storage"
	"github.com/lifeviz/lifeviz/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lifeviz",
	Short: "Life Visualizer CLI",
	Long:  "Computes how a lifetime divides across daily activities and analyzes the long-term effect of changing them",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "lifeviz %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// newEngine builds an engine honoring the global flags.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		engine.Selector = calculation.SeededSelector{Rand: newSeededRand(seed)}
	}
	return engine
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewProfileParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Profile file %s is valid\n", args[0])
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [profile-file]",
	Short: "Render the lifetime activity breakdown for a profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewProfileParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		lifeExpectancy := resolveLifeExpectancy(cmd.Context(), profile)

		report := engine.Summarize(profile, lifeExpectancy, time.Now())

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unsupported format: %s", format)
		}
		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [profile-file]",
	Short: "Analyze the long-term effect of changing one activity's daily hours",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewProfileParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		activityName, _ := cmd.Flags().GetString("activity")
		change, _ := cmd.Flags().GetFloat64("change")
		endAge, _ := cmd.Flags().GetFloat64("until-age")

		activity, ok := findActivity(profile, activityName)
		if !ok {
			log.Fatalf("profile has no activity named %q", activityName)
		}

		engine := newEngine(cmd)
		currentAge := decimal.NewFromInt(int64(profile.Age(time.Now())))
		end := decimal.NewFromFloat(endAge)
		if !end.IsPositive() {
			end = resolveLifeExpectancy(cmd.Context(), profile)
		}

		result := engine.AnalyzeTrend(activity, decimal.NewFromFloat(change),
			domain.AgeRange{Start: currentAge, End: end}, currentAge)

		fmt.Printf("Activity:           %s (%+.1fh/day)\n", activity.Name, change)
		fmt.Printf("Original years:     %s\n", output.FormatYears(result.OriginalYears))
		fmt.Printf("Modified years:     %s\n", output.FormatYears(result.ModifiedYears))
		fmt.Printf("Compound effect:    %s years\n", output.FormatYears(result.CompoundEffect))
		fmt.Printf("Yearly impact:      %s years/year\n", result.YearlyImpact.StringFixed(4))
		fmt.Printf("Compounding:        x%s (health x%s, skill x%s)\n",
			result.CompoundingFactors.TotalBenefit.StringFixed(2),
			result.CompoundingFactors.HealthMultiplier.StringFixed(2),
			result.CompoundingFactors.SkillMultiplier.StringFixed(2))
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	},
}

var costBenefitCmd = &cobra.Command{
	Use:   "cost-benefit [profile-file]",
	Short: "Score reallocating daily hours from one activity to another",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewProfileParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		fromName, _ := cmd.Flags().GetString("from")
		toName, _ := cmd.Flags().GetString("to")
		hoursMoved, _ := cmd.Flags().GetFloat64("hours")

		from, ok := findActivity(profile, fromName)
		if !ok {
			log.Fatalf("profile has no activity named %q", fromName)
		}
		to, ok := findActivity(profile, toName)
		if !ok {
			log.Fatalf("profile has no activity named %q", toName)
		}

		engine := newEngine(cmd)
		currentAge := decimal.NewFromInt(int64(profile.Age(time.Now())))
		lifeExpectancy := resolveLifeExpectancy(cmd.Context(), profile)

		result := engine.AnalyzeCostBenefit(from, to, decimal.NewFromFloat(hoursMoved), currentAge, lifeExpectancy)

		fmt.Printf("Moving %.1fh/day: %s -> %s\n\n", hoursMoved, from.Name, to.Name)
		fmt.Printf("Years lost to %s:    %s (%s)\n", result.OpportunityCost.Activity,
			output.FormatYears(result.OpportunityCost.YearsLost), result.OpportunityCost.QualitativeImpact)
		fmt.Printf("Years gained by %s:  %s (%s)\n", result.Benefit.Activity,
			output.FormatYears(result.Benefit.YearsGained), result.Benefit.QualitativeImpact)
		fmt.Printf("Potential ROI:       %s\n", result.Benefit.PotentialROI)
		fmt.Printf("Time value score:    %s\n", result.NetImpact.TimeValue.StringFixed(1))
		fmt.Printf("Verdict:             %s (confidence: %s)\n",
			result.NetImpact.Recommendation, result.NetImpact.Confidence)
	},
}

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Show life-phase recommendations for an age",
	Run: func(cmd *cobra.Command, args []string) {
		age, _ := cmd.Flags().GetFloat64("age")
		lifeExpectancy, _ := cmd.Flags().GetFloat64("life-expectancy")

		engine := newEngine(cmd)
		result := engine.LifePhase(decimal.NewFromFloat(age), decimal.NewFromFloat(lifeExpectancy))

		fmt.Printf("Current phase: %s\n", result.CurrentPhase)
		fmt.Printf("Next phase:    %s (in %s years)\n\n",
			result.TransitionPlanning.NextPhase,
			result.TransitionPlanning.TimeToTransition.StringFixed(1))
		fmt.Println("Preparation steps:")
		for _, step := range result.TransitionPlanning.PreparationSteps {
			fmt.Printf("  - %s\n", step)
		}
		fmt.Println()
		for _, phase := range result.Recommendations {
			marker := "  "
			if phase.Phase == result.CurrentPhase {
				marker = "> "
			}
			fmt.Printf("%s%s (%s): focus on %v\n", marker, phase.Phase, phase.AgeBracket, phase.FocusAreas)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the visualizer HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		dbPath, _ := cmd.Flags().GetString("db")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		rateLimit, _ := cmd.Flags().GetInt("rate-limit")

		logger := simpleCLILogger{}

		var cache lifedata.Cache
		if redisAddr != "" {
			cache = lifedata.NewRedisCache(redisAddr, cacheTTL)
		} else {
			cache = lifedata.NewMemoryCache(cacheTTL)
		}
		provider := lifedata.NewProvider(lifedata.NewClient(), cache)
		provider.Logger = logger

		var snapshots storage.SnapshotRepository
		if dbPath != "" {
			repo, err := storage.NewSQLiteSnapshotRepository(dbPath)
			if err != nil {
				log.Fatal(err)
			}
			defer repo.Close()
			snapshots = repo
		} else {
			snapshots = storage.NewMemorySnapshotRepository()
		}

		engine := newEngine(cmd)
		srv := server.New(server.Options{
			Engine:    engine,
			Provider:  provider,
			Snapshots: snapshots,
			Logger:    logger,
			RateLimit: rateLimit,
		})
		defer srv.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := srv.ListenAndServe(ctx, addr); err != nil {
			log.Fatal(err)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [profile-file]",
	Short: "Explore a profile interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewProfileParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		lifeExpectancy := resolveLifeExpectancy(cmd.Context(), profile)

		model := tui.NewModel(engine, profile, lifeExpectancy)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	},
}

// resolveLifeExpectancy prefers the profile override, then the statistics
// provider (which itself degrades to the static fallback table offline).
func resolveLifeExpectancy(ctx context.Context, profile *domain.Profile) decimal.Decimal {
	if profile.LifeExpectancy != nil {
		return *profile.LifeExpectancy
	}
	if ctx == nil {
		ctx = context.Background()
	}
	provider := lifedata.NewProvider(lifedata.NewClient(), lifedata.NewMemoryCache(time.Hour))
	return provider.LifeExpectancy(ctx, profile.CountryCode)
}

func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func findActivity(profile *domain.Profile, name string) (domain.Activity, bool) {
	for _, activity := range profile.Activities {
		if activity.Name == name {
			return activity, true
		}
	}
	return domain.Activity{}, false
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for randomized recommendation selection (0 = deterministic)")

	reportCmd.Flags().String("format", "console", "Output format (console, json, csv)")

	analyzeCmd.Flags().String("activity", "", "Activity name from the profile")
	analyzeCmd.Flags().Float64("change", 0, "Change in daily hours (may be negative)")
	analyzeCmd.Flags().Float64("until-age", 0, "End of the projection window (default: life expectancy)")
	analyzeCmd.MarkFlagRequired("activity")

	costBenefitCmd.Flags().String("from", "", "Activity losing hours")
	costBenefitCmd.Flags().String("to", "", "Activity gaining hours")
	costBenefitCmd.Flags().Float64("hours", 1, "Daily hours to reallocate")
	costBenefitCmd.MarkFlagRequired("from")
	costBenefitCmd.MarkFlagRequired("to")

	phasesCmd.Flags().Float64("age", 30, "Current age")
	phasesCmd.Flags().Float64("life-expectancy", 80, "Life expectancy")

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address for the life-expectancy cache (empty = in-memory)")
	serveCmd.Flags().String("db", "", "SQLite database path for snapshots (empty = in-memory)")
	serveCmd.Flags().Duration("cache-ttl", 24*time.Hour, "Life-expectancy cache TTL")
	serveCmd.Flags().Int("rate-limit", 60, "Requests per minute per client IP (0 disables)")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(costBenefitCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
