package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/vocabquiz/vocabquiz/internal/quiz"
	"github.com/vocabquiz/vocabquiz/internal/report"
	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

const (
	commandReveal = "?"
	commandExit   = ":q"
)

// VocabQuizCLI runs the tests of one day's vocabulary in the terminal.
type VocabQuizCLI struct {
	*InteractiveQuizCLI
	dayName  string
	session  *quiz.Session
	exporter *report.Exporter
	withPDF  bool
	now      func() time.Time
}

func NewVocabQuizCLI(dayName string, session *quiz.Session, stdin io.Reader, stdout io.Writer) *VocabQuizCLI {
	return &VocabQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		dayName:            dayName,
		session:            session,
		now:                time.Now,
	}
}

// WithExporter exports the results report once all tests are completed.
func (r *VocabQuizCLI) WithExporter(exporter *report.Exporter, withPDF bool) *VocabQuizCLI {
	r.exporter = exporter
	r.withPDF = withPDF
	return r
}

// Session shows the test selection once and runs the chosen test.
func (r *VocabQuizCLI) Session(ctx context.Context) error {
	if result, ok := r.session.Report(); ok {
		return r.finish(result)
	}

	r.printf("\n")
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s (%d words)\n", r.dayName, len(r.session.Entries()))
	for _, testType := range quiz.AllTestTypes {
		status := ""
		if r.session.IsCompleted(testType) {
			status = r.green.Sprint(" ✓ completed")
		}
		r.printf("  %d. %s%s\n", int(testType), testType, status)
	}
	r.printf("Select a test (q to quit): ")

	line, err := r.readLine()
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if line == "q" || line == commandExit {
		return errEnd
	}

	number, err := strconv.Atoi(line)
	if err != nil || number < 1 || number > len(quiz.AllTestTypes) {
		r.printf("Unknown test %q\n", line)
		return nil
	}
	testType := quiz.TestType(number)
	if r.session.IsCompleted(testType) {
		r.printf("%s has already been completed\n", testType)
		return nil
	}

	if testType == quiz.TestTypeMatching {
		return r.runMatchingTest(ctx)
	}
	return r.runTypingTest(ctx, testType)
}

func (r *VocabQuizCLI) runTypingTest(ctx context.Context, testType quiz.TestType) error {
	test, err := r.session.StartTypingTest(testType)
	if err != nil {
		return fmt.Errorf("session.StartTypingTest() > %w", err)
	}
	r.printf("\n%s\nType the answer, %q to reveal it, %q to exit\n", r.bold.Sprint(testType), commandReveal, commandExit)

	for !test.Completed() {
		if err := ctx.Err(); err != nil {
			return err
		}

		position, total := test.Progress()
		if test.CanAdvance() {
			r.printf("[%d/%d] Press Enter to continue: ", position+1, total)
		} else {
			r.printf("[%d/%d] %s: ", position+1, total, r.bold.Sprint(test.Prompt()))
		}

		line, err := r.readLine()
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case commandExit:
			exited, err := r.exitTest()
			if err != nil || exited {
				return err
			}
			continue
		case commandReveal:
			r.render(test.Reveal())
			continue
		case "":
			if test.CanAdvance() {
				events, err := test.Advance()
				if err != nil {
					return fmt.Errorf("test.Advance() > %w", err)
				}
				if done, err := r.handle(events); done || err != nil {
					return err
				}
			}
			continue
		}

		events := test.Input(line)
		if len(events) == 0 && !test.Locked() {
			// A submitted line is a whole answer, so a short one is wrong rather than partial.
			events = []quiz.Event{{Kind: quiz.EventWrong, TestType: testType, SourceIndex: -1, TargetIndex: -1}}
		}
		r.render(events)
		if test.Locked() {
			events, err := test.Advance()
			if err != nil {
				return fmt.Errorf("test.Advance() > %w", err)
			}
			if done, err := r.handle(events); done || err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *VocabQuizCLI) runMatchingTest(ctx context.Context) error {
	r.printf("\n%s\nAbout %d rounds. Pair a word with its meaning, e.g. 1c. %q to exit\n",
		r.bold.Sprint(quiz.TestTypeMatching), r.session.EstimatedRounds(), commandExit)

	test, stats, err := r.session.StartMatchingTest()
	if err != nil {
		return fmt.Errorf("session.StartMatchingTest() > %w", err)
	}
	if stats.Shortfall > 0 {
		r.printf("%d rounds could be built; some words appear fewer times.\n", stats.Rounds)
	}

	for !test.Completed() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.renderRound(test)
		r.printf("Match: ")

		line, err := r.readLine()
		if err != nil {
			return err
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == commandExit {
			exited, err := r.exitTest()
			if err != nil || exited {
				return err
			}
			continue
		}

		events, err := r.selectItems(test, line)
		if err != nil {
			r.printf("%v\n", err)
			continue
		}
		r.render(events)

		if test.RoundComplete() {
			events, err := test.NextRound()
			if err != nil {
				return fmt.Errorf("test.NextRound() > %w", err)
			}
			if done, err := r.handle(events); done || err != nil {
				return err
			}
		}
	}
	return nil
}

// selectItems applies a selection such as "2", "b" or "2b".
func (r *VocabQuizCLI) selectItems(test *quiz.MatchingTest, line string) ([]quiz.Event, error) {
	digits := strings.TrimRightFunc(line, func(c rune) bool { return c < '0' || c > '9' })
	letters := strings.TrimPrefix(line, digits)
	if line == "" || len(letters) > 1 || (letters != "" && (letters[0] < 'a' || letters[0] > 'z')) {
		return nil, fmt.Errorf("enter a number, a letter, or both such as 1c")
	}

	var events []quiz.Event
	if digits != "" {
		number, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", digits)
		}
		selected, err := test.SelectSource(number - 1)
		if err != nil {
			return nil, fmt.Errorf("no word %d", number)
		}
		events = append(events, selected...)
	}
	if letters != "" {
		selected, err := test.SelectTarget(int(letters[0] - 'a'))
		if err != nil {
			return nil, fmt.Errorf("no meaning %s", letters)
		}
		events = append(events, selected...)
	}
	return events, nil
}

func (r *VocabQuizCLI) renderRound(test *quiz.MatchingTest) {
	position, total := test.Progress()
	r.printf("\nRound %d/%d (%d/%d matched)\n", position+1, total, test.CorrectCount(), len(test.Sources()))

	sources, targets := test.Sources(), test.Targets()
	selectedSource, selectedTarget := test.Selection()
	width := 0
	for _, source := range sources {
		width = max(width, len([]rune(source.English)))
	}
	for i := range sources {
		left := fmt.Sprintf("%2d. %s", i+1, sources[i].English)
		right := fmt.Sprintf("%c. %s", 'a'+i, targets[i].Vietnamese)
		left = r.markItem(left, test.SourceMatched(i), selectedSource == i)
		right = r.markItem(right, test.TargetMatched(i), selectedTarget == i)
		padding := strings.Repeat(" ", width-len([]rune(sources[i].English))+4)
		r.printf("  %s%s%s\n", left, padding, right)
	}
}

func (r *VocabQuizCLI) markItem(text string, matched, selected bool) string {
	switch {
	case matched:
		return r.green.Sprint(text)
	case selected:
		return r.bold.Sprint(text)
	default:
		return text
	}
}

func (r *VocabQuizCLI) exitTest() (bool, error) {
	confirmed, err := r.confirm("Exit this test? Its progress will be lost")
	if err != nil {
		return false, err
	}
	if r.session.Exit(confirmed) {
		r.printf("Test exited\n")
		return true, nil
	}
	return false, nil
}

func (r *VocabQuizCLI) render(events []quiz.Event) {
	for _, event := range events {
		switch event.Kind {
		case quiz.EventCorrect:
			if event.Credited {
				r.printf("✅ %s\n", r.green.Sprint("Correct!"))
			} else {
				r.printf("✅ %s\n", r.green.Sprint("Correct, but it was revealed and is not counted"))
			}
		case quiz.EventClose:
			r.printf("\U0001F914 %s\n", r.yellow.Sprint("Almost! Check your spelling"))
		case quiz.EventWrong:
			r.printf("❌ %s\n", r.red.Sprint("Not quite, try again"))
		case quiz.EventRevealed:
			r.printf("The answer is %s\n", r.italic.Sprintf("%q", event.Answer))
		case quiz.EventMatchCorrect:
			r.printf("✅ %s = %s\n", event.Entry.English, event.Entry.Vietnamese)
		case quiz.EventMatchWrong:
			r.printf("❌ %s\n", r.red.Sprintf("%s does not match", event.Entry.English))
			r.sleep(event.Delay)
		case quiz.EventRoundComplete:
			r.sleep(event.Delay)
			r.printf("%s\n", r.green.Sprint("Round complete!"))
		}
	}
}

// handle completes the session test when events contain the test completion.
// It reports whether the running test is over.
func (r *VocabQuizCLI) handle(events []quiz.Event) (bool, error) {
	for _, event := range events {
		if event.Kind != quiz.EventTestComplete {
			continue
		}
		r.printf("%s\n", r.green.Sprintf("%s completed", event.TestType))

		result, done, err := r.session.Complete()
		if err != nil {
			return true, fmt.Errorf("session.Complete() > %w", err)
		}
		if done {
			return true, r.finish(result)
		}
		return true, nil
	}
	return false, nil
}

// finish shows the results and asks to retry. Declining ends the quiz.
func (r *VocabQuizCLI) finish(result quiz.Report) error {
	r.renderResults(result)
	if r.exporter != nil {
		paths, err := r.exporter.Export(report.Data{
			DayName:     r.dayName,
			GeneratedAt: r.now(),
			Report:      result,
		}, r.withPDF)
		if err != nil {
			return fmt.Errorf("exporter.Export() > %w", err)
		}
		for _, path := range paths {
			slog.Debug("exported the results", slog.String("path", path))
			r.printf("Saved %s\n", path)
		}
	}

	retry, err := r.confirm("Retry with the same words?")
	if err != nil {
		return err
	}
	if !retry {
		return errEnd
	}
	r.session.Retry()
	return nil
}

func (r *VocabQuizCLI) renderResults(result quiz.Report) {
	score := r.red
	switch {
	case result.Percent >= 80:
		score = r.green
	case result.Percent >= 50:
		score = r.yellow
	}

	r.printf("\n%s\n", r.bold.Sprint("Results"))
	r.printf("Score: %s (%d correct, %d to review)\n",
		score.Sprintf("%d%%", result.Percent), result.TotalCorrect, result.TotalWrong)
	for _, breakdown := range result.Breakdown {
		r.printf("  %s: %d correct, %d wrong\n", breakdown.TestType, breakdown.Correct, breakdown.Wrong)
	}

	if len(result.WrongEntries) == 0 {
		r.printf("%s\n", r.green.Sprint("All words were answered correctly."))
		return
	}
	r.printf("Words to review:\n")
	for _, entry := range result.WrongEntries {
		r.printf("  %s - %s  %s\n",
			r.bold.Sprint(entry.English),
			r.italic.Sprint(entry.Vietnamese),
			vocabulary.PronunciationURL(entry.English),
		)
	}
}
