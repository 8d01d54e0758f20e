// examcli takes an exam against a running server from the terminal:
// login (or register), answer the randomized question set under the
// countdown, submit manually or let the timer auto-submit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"exam-platform-backend/internal/client"
	"exam-platform-backend/internal/services"
	"exam-platform-backend/internal/session"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "exam API base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	register := flag.Bool("register", false, "register a new account before starting")
	name := flag.String("name", "", "name (with -register)")
	regNumber := flag.String("regnumber", "", "registration number (with -register)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	api := client.New(*server)

	var token string
	var err error
	if *register {
		token, err = api.Register(client.RegisterRequest{
			Name:               *name,
			Email:              *email,
			Password:           *password,
			RegistrationNumber: *regNumber,
		})
	} else {
		token, err = api.Login(*email, *password)
	}
	if err != nil {
		log.Fatalf("authentication failed: %v", err)
	}

	paper, err := api.FetchExam(token)
	if err != nil {
		log.Fatalf("failed to fetch exam: %v", err)
	}

	questions := make([]session.Question, 0, len(paper.Questions))
	for _, q := range paper.Questions {
		questions = append(questions, session.Question{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		})
	}

	sess, err := session.New(questions, time.Duration(paper.TimeLimit)*time.Second)
	if err != nil {
		log.Fatalf("cannot start session: %v", err)
	}

	fmt.Printf("Exam started: %d questions, %s on the clock.\n",
		sess.Len(), formatDuration(time.Duration(paper.TimeLimit)*time.Second))
	fmt.Println(`Commands: 1-9 select option, "n" next, "p" previous, "submit", "quit".`)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

	expired := make(chan struct{})
	stopTimer := sess.StartTimer(nil, func() { close(expired) })
	defer stopTimer()

	if !runExam(sess, lines, expired, os.Stdout) {
		return
	}
	stopTimer()
	submit(api, token, sess, paper.AttemptToken)
}

// runExam drives the interactive loop until the exam should be
// submitted (true), or was abandoned (false). Expiry always wins, even
// while waiting on the submit confirmation.
func runExam(sess *session.Session, lines <-chan string, expired <-chan struct{}, out io.Writer) bool {
	printQuestion(sess, out)

	for {
		select {
		case <-expired:
			fmt.Fprintln(out, "\nTime is up, submitting automatically.")
			return true

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "Input closed, abandoning exam.")
				return false
			}
			switch line {
			case "n":
				sess.Next()
				printQuestion(sess, out)
			case "p":
				sess.Prev()
				printQuestion(sess, out)
			case "submit":
				fmt.Fprintf(out, "Submit now with %d of %d answered? This cannot be undone. (y/N) ",
					sess.AnsweredCount(), sess.Len())
				select {
				case <-expired:
					fmt.Fprintln(out, "\nTime is up, submitting automatically.")
					return true
				case confirm, ok := <-lines:
					if ok && strings.EqualFold(confirm, "y") {
						return true
					}
					printQuestion(sess, out)
				}
			case "quit":
				fmt.Fprintln(out, "Exam abandoned, nothing was submitted.")
				return false
			default:
				choice, err := strconv.Atoi(line)
				if err != nil {
					fmt.Fprintln(out, "Unrecognized command.")
					continue
				}
				_, pos := sess.Current()
				if err := sess.RecordAnswer(pos, choice-1); err != nil {
					fmt.Fprintf(out, "Cannot record answer: %v\n", err)
					continue
				}
				sess.Next()
				printQuestion(sess, out)
			}
		}
	}
}

func printQuestion(sess *session.Session, out io.Writer) {
	q, pos := sess.Current()
	fmt.Fprintf(out, "\n[%s remaining] Question %d of %d (%s, %s)\n",
		formatDuration(sess.Remaining()), pos+1, sess.Len(), q.Category, q.Difficulty)
	fmt.Fprintln(out, q.Text)
	for i, opt := range q.Options {
		marker := " "
		if selected, ok := sess.Answered(pos); ok && selected == i {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %d) %s\n", marker, i+1, opt)
	}
}

func submit(api *client.Client, token string, sess *session.Session, attemptToken string) {
	sub, err := sess.Submit()
	if err != nil {
		log.Fatalf("submit failed: %v", err)
	}

	answers := make([]services.SubmittedAnswer, 0, len(sub.Answers))
	for _, a := range sub.Answers {
		answers = append(answers, services.SubmittedAnswer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
		})
	}

	summary, err := api.SubmitExam(token, client.SubmitRequest{
		Answers:      answers,
		TimeSpent:    sub.TimeSpent,
		AttemptToken: attemptToken,
	})
	if err != nil {
		log.Fatalf("submitting exam: %v", err)
	}

	fmt.Printf("\nScore: %d/%d (%d%%) in %s\n",
		summary.Score, summary.TotalQuestions, summary.Percentage,
		formatDuration(time.Duration(summary.TimeSpent)*time.Second))
	fmt.Printf("Result id: %s\n", summary.ResultID)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
