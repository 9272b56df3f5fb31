package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/veostudio"
	"github.com/deepnoodle-ai/veostudio/veo"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively structure and edit a Veo prompt",
	Long: `Start an interactive editing session. Structure an idea once, then edit
any field in place and export the result when done. Edits are blocked while
a structuring call is outstanding: the loop is strictly one step at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		idea, _ := cmd.Flags().GetString("idea")
		runEditor(title, idea)
	},
}

func runEditor(title, idea string) {
	reader := bufio.NewReader(os.Stdin)
	session := veostudio.NewSession()

	if title == "" {
		title = promptLine(reader, "Project name: ")
	}
	if title != "" {
		session.SetTitle(title)
	}

	if idea == "" {
		idea = promptLine(reader, "Video idea: ")
	}
	if title == "" || idea == "" {
		fmt.Println(warnStyle.Sprint("A title and an idea are both required before structuring."))
	} else {
		structureInto(session, title, idea)
	}

	for {
		printSpec(session.Spec())
		fmt.Println(infoStyle.Sprint("Enter a field number to edit, (s)tructure again, (w)rite file, (q)uit."))
		choice := strings.ToLower(promptLine(reader, "> "))

		switch choice {
		case "q", "quit":
			return
		case "w", "write":
			data, name, err := session.Export()
			if err != nil {
				fmt.Println(errorStyle.Sprint(err))
				continue
			}
			if err := os.WriteFile(name, data, 0644); err != nil {
				fmt.Println(errorStyle.Sprint(err))
				continue
			}
			fmt.Printf("%s %s\n", successStyle.Sprint("Exported"), boldStyle.Sprint(name))
		case "s", "structure":
			newIdea := promptLine(reader, "Video idea: ")
			if session.ProjectName() == "" || newIdea == "" {
				fmt.Println(warnStyle.Sprint("A title and an idea are both required. No request was made."))
				continue
			}
			structureInto(session, session.ProjectName(), newIdea)
		default:
			number, err := strconv.Atoi(choice)
			if err != nil || number < 1 || number > 12 {
				fmt.Println(warnStyle.Sprint("Unrecognized choice."))
				continue
			}
			editField(reader, session, number)
		}
	}
}

// structureInto runs one structuring call and replaces the session spec on
// success. On failure the message is shown and the prior spec is kept.
func structureInto(session *veostudio.Session, title, idea string) {
	fmt.Println(infoStyle.Sprint("Structuring..."))
	if err := runStructure(session, title, idea); err != nil {
		fmt.Println(errorStyle.Sprint(err))
		return
	}
	fmt.Println(successStyle.Sprint("Done."))
}

func editField(reader *bufio.Reader, session *veostudio.Session, number int) {
	switch number {
	case 1:
		session.SetTitle(promptLine(reader, "Title: "))
	case 2:
		session.SetSubject(promptLine(reader, "Subject: "))
	case 3:
		session.SetAction(promptLine(reader, "Action: "))
	case 4:
		session.SetContext(promptLine(reader, "Context: "))
	case 5:
		session.SetCinematography(promptLine(reader, "Cinematography: "))
	case 6:
		session.SetStyle(promptLine(reader, "Style: "))
	case 7:
		session.SetAmbientMusic(promptLine(reader, "Ambient/Music: "))
	case 8:
		session.SetSFX(promptLine(reader, "SFX: "))
	case 9:
		session.SetDialogue(promptLine(reader, "Dialogue: "))
	case 10:
		session.SetAspectRatio(promptChoice(reader, "Aspect ratio", veo.AspectRatios))
	case 11:
		session.SetResolution(promptChoice(reader, "Resolution", veo.Resolutions))
	case 12:
		session.SetDuration(promptDuration(reader))
	}
}

func printSpec(spec veo.PromptSpec) {
	fmt.Println()
	fmt.Println(boldStyle.Sprintf("%s  (created %s)", spec.ProjectMeta.Title, spec.ProjectMeta.CreatedAt))
	fmt.Printf("  1. Title:           %s\n", spec.ProjectMeta.Title)
	fmt.Println(boldStyle.Sprint("Video Elements"))
	fmt.Printf("  2. Subject:         %s\n", spec.VideoElements.Subject)
	fmt.Printf("  3. Action:          %s\n", spec.VideoElements.Action)
	fmt.Printf("  4. Context:         %s\n", spec.VideoElements.Context)
	fmt.Printf("  5. Cinematography:  %s\n", spec.VideoElements.Cinematography)
	fmt.Printf("  6. Style:           %s\n", spec.VideoElements.Style)
	fmt.Println(boldStyle.Sprint("Audio Elements"))
	fmt.Printf("  7. Ambient/Music:   %s\n", spec.AudioElements.AmbientMusic)
	fmt.Printf("  8. SFX:             %s\n", spec.AudioElements.SFX)
	fmt.Printf("  9. Dialogue:        %s\n", spec.AudioElements.Dialogue)
	fmt.Println(boldStyle.Sprint("Settings"))
	fmt.Printf(" 10. Aspect ratio:    %s\n", veo.NormalizeAspectRatio(spec.TechnicalSettings.AspectRatio))
	fmt.Printf(" 11. Resolution:      %s\n", veo.NormalizeResolution(spec.TechnicalSettings.Resolution))
	fmt.Printf(" 12. Duration (sec):  %d\n", spec.TechnicalSettings.DurationSec)
	fmt.Println()
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptChoice selects one of the given options by index. Out-of-range or
// non-numeric input keeps the first option.
func promptChoice(reader *bufio.Reader, label string, options []string) string {
	for i, option := range options {
		fmt.Printf("  %d. %s\n", i+1, option)
	}
	input := promptLine(reader, label+": ")
	index, err := strconv.Atoi(input)
	if err != nil || index < 1 || index > len(options) {
		return options[0]
	}
	return options[index-1]
}

// promptDuration reads a duration in seconds, re-asking until the input is a
// number. The accepted range is enforced by the session's clamp.
func promptDuration(reader *bufio.Reader) int {
	for {
		input := promptLine(reader, fmt.Sprintf("Duration in seconds (%d-%d): ", veo.MinDurationSec, veo.MaxDurationSec))
		seconds, err := strconv.Atoi(input)
		if err == nil {
			return seconds
		}
		fmt.Println(warnStyle.Sprint("Enter a whole number of seconds."))
	}
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("title", "t", "", "Project name, used for the export file name")
	editCmd.Flags().StringP("idea", "i", "", "Free-text video idea to expand")
}
