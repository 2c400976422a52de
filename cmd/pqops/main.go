package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/config"
	"github.com/fernicar/PQ-TINS-Edition/internal/game"
	"github.com/fernicar/PQ-TINS-Edition/internal/lingo"
	"github.com/fernicar/PQ-TINS-Edition/internal/loot"
	"github.com/fernicar/PQ-TINS-Edition/internal/ops"
	"github.com/fernicar/PQ-TINS-Edition/internal/runner"
	"github.com/fernicar/PQ-TINS-Edition/internal/save"
	"github.com/fernicar/PQ-TINS-Edition/internal/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	if err := cmd(os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

var commands = map[string]func(args []string, out io.Writer) error{
	"backup":  cmdBackup,
	"restore": cmdRestore,
	"drill":   cmdDrill,
	"decode":  cmdDecode,
	"list":    cmdList,
	"show":    cmdShow,
	"stats":   cmdStats,
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: pqops <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  backup   archive the saves directory (.tar.gz)")
	fmt.Fprintln(w, "  restore  unpack a saves archive")
	fmt.Fprintln(w, "  drill    back up, restore and compare digests")
	fmt.Fprintln(w, "  decode   print a .pqw file as JSON")
	fmt.Fprintln(w, "  list     list saved heroes")
	fmt.Fprintln(w, "  show     summarize a hero")
	fmt.Fprintln(w, "  stats    simulate a hero and report what happened")
}

func loadConfig(path string) (*config.Config, error) {
	return config.Resolve(path)
}

func cmdBackup(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	configPath := fs.String("config", "pq.yml", "path to config file")
	archive := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *archive == "" {
		*archive = filepath.Join("backups", ops.ArchiveName(time.Now()))
	}
	n, err := ops.Backup(cfg.SavesDir, *archive)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%s)\n", *archive, plural(n, "file"))
	return nil
}

func cmdRestore(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "savegame-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	n, err := ops.Restore(*archive, *target)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "restored %s into %s\n", plural(n, "file"), *target)
	return nil
}

func cmdDrill(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	configPath := fs.String("config", "pq.yml", "path to config file")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	report, err := ops.Drill(cfg.SavesDir, *workDir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "backup:", report.Archive)
	fmt.Fprintln(out, "restored:", report.RestoreDir)
	fmt.Fprintln(out, "files:", report.Files)
	fmt.Fprintln(out, "digest:", report.Digest)
	return nil
}

func cmdDecode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: pqops decode <file.pqw>")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	raw, err := save.DecodeJSON(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, gjson.GetBytes(raw, "@pretty").Raw)
	return err
}

func cmdList(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	configPath := fs.String("config", "pq.yml", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	repo, closeRepo, err := runner.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	heroes, err := repo.List(context.Background())
	if err != nil {
		return err
	}
	if len(heroes) == 0 {
		fmt.Fprintln(out, "no saved heroes in", cfg.SavesDir)
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLEVEL\tRACE\tCLASS\tSAVED")
	for _, h := range heroes {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", h.Name, h.Level, h.Race, h.Class, humanize.Time(h.Saved))
	}
	return tw.Flush()
}

func cmdShow(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	configPath := fs.String("config", "pq.yml", "path to config file")
	name := fs.String("name", "", "hero to show (default: most recently saved)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		snap save.Snapshot
		err  error
	)
	if fs.NArg() == 1 {
		data, rerr := os.ReadFile(fs.Arg(0))
		if rerr != nil {
			return rerr
		}
		snap, err = save.Decode(data)
	} else {
		snap, err = loadHero(*configPath, *name)
	}
	if err != nil {
		return err
	}

	e := game.New(game.Options{})
	if err := e.Apply(snap); err != nil {
		return err
	}
	writeHero(out, e.State())
	return nil
}

func loadHero(configPath, name string) (save.Snapshot, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return save.Snapshot{}, err
	}
	repo, closeRepo, err := runner.OpenStore(cfg)
	if err != nil {
		return save.Snapshot{}, err
	}
	defer closeRepo()
	if name == "" {
		return repo.Latest(context.Background())
	}
	return repo.Load(context.Background(), name)
}

func writeHero(out io.Writer, v game.View) {
	fmt.Fprintf(out, "%s, the level %d %s %s\n", v.Name, v.Level, v.Race, v.Class)
	fmt.Fprintf(out, "  %s: %s\n", v.Plot, v.Task)
	fmt.Fprintf(out, "  played %s over %s tasks\n", lingo.RoughTime(int(v.Elapsed)), humanize.Comma(int64(v.Tasks)))
	if v.BestQuest != "" {
		fmt.Fprintf(out, "  quest: %s\n", v.BestQuest)
	}

	var stats []string
	for _, s := range v.Stats {
		stats = append(stats, fmt.Sprintf("%s %d", s.Name, s.Value))
	}
	fmt.Fprintf(out, "  stats: %s\n", strings.Join(stats, ", "))
	fmt.Fprintf(out, "  best: %s, %s\n", v.BestEquip, orNone(v.BestSpell))

	gold := 0
	carried := 0
	for _, it := range v.Inventory {
		if it.Name == loot.Gold {
			gold = it.Qty
			continue
		}
		carried += it.Qty
	}
	fmt.Fprintf(out, "  gold: %s, carrying %s\n", humanize.Comma(int64(gold)), plural(carried, "item"))
	fmt.Fprintf(out, "  experience: %s of %s\n",
		humanize.Comma(int64(v.ExperienceBar.Position)), humanize.Comma(int64(v.ExperienceBar.Max)))
}

func cmdStats(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	seed := fs.String("seed", "stats", "seed phrase for the simulated hero")
	pace := fs.String("pace", "", "balance preset: brisk, leisurely or default")
	hours := fs.Float64("hours", 24, "simulated hours of play")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *hours <= 0 {
		return fmt.Errorf("hours must be positive")
	}

	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := game.NewFakeClock(start)
	events := telemetry.NewMemoryRepository().WithClock(clock.Now).WithLimit(0)
	balance := config.Preset(*pace)
	e := game.New(game.Options{Balance: balance, Clock: clock, Events: events})
	if err := e.CreateRandomCharacter(alea.Seed(*seed)); err != nil {
		return err
	}

	step := balance.MaxTick()
	ticks := int(time.Duration(*hours*float64(time.Hour)) / step)
	for i := 0; i < ticks; i++ {
		clock.Advance(step)
		if err := e.Tick(step); err != nil {
			return err
		}
	}

	evs, err := events.GetEvents(start, nil)
	if err != nil {
		return err
	}
	stats, err := telemetry.CalculateStats(evs, start)
	if err != nil {
		return err
	}
	writeHero(out, e.State())
	writeStats(out, stats, *hours)
	return nil
}

func writeStats(out io.Writer, s telemetry.Stats, hours float64) {
	fmt.Fprintf(out, "\nin %s hours:\n", humanize.Ftoa(hours))
	fmt.Fprintf(out, "  tasks: %s (%s per level)\n", humanize.Comma(int64(s.TaskCompletions)), humanize.FormatFloat("#,###.#", s.TasksPerLevel))
	fmt.Fprintf(out, "  levels: %d, quests: %d, acts: %d\n", s.LevelUps, s.QuestsCompleted, s.ActsCompleted)
	fmt.Fprintf(out, "  gold from sales: %s\n", humanize.Comma(int64(s.GoldEarned)))
	writeCounts(out, "tasks by kind", s.TasksByKind)
	writeCounts(out, "quest rewards", s.RewardsByKind)
	writeCounts(out, "stat gains", s.StatGains)
}

func writeCounts(out io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %s", k, humanize.Comma(int64(counts[k])))
	}
	fmt.Fprintf(out, "  %s: %s\n", title, strings.Join(parts, ", "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + lingo.Plural(noun)
}

func orNone(s string) string {
	if s == "" {
		return "no spells"
	}
	return s
}
