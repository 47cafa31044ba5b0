// Command dragon is a small demo bundling three features: a text
// transformation utility, degree/radian angle conversion, and a turtle
// graphics drawing of a Dragon curve fractal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"honnef.co/go/dragon"
	"honnef.co/go/dragon/window"
)

const (
	defaultPhrase = "A day in the life of a software engineer"
	defaultAngle  = 90.0
)

var stdin = bufio.NewReader(os.Stdin)

// prompt prints message and reads one line of input, without the trailing
// newline.
func prompt(message string) (string, error) {
	fmt.Print(message)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func getPhrase() string {
	s, err := prompt("Enter a phrase: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read user input :(. Here's why: %v. Using the phrase %q\n", err, defaultPhrase)
		return defaultPhrase
	}
	return s
}

func getAngle() dragon.Angle {
	for {
		s, err := prompt("Now enter an angle. Use ° to indicate degrees and \"rad.\" to indicate radians: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not read angle :(. Here's why: %v. Using the angle %v°\n", err, defaultAngle)
			return dragon.Deg(defaultAngle)
		}
		a, err := dragon.ParseAngle(strings.TrimRightFunc(s, unicode.IsSpace))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v. Try again.\n", err)
			continue
		}
		return a
	}
}

func runText(phrase string) {
	if phrase == "" {
		phrase = getPhrase()
	}
	fmt.Println(autistify(phrase))
	fmt.Println(shout(phrase))
}

func runAngle(arg string) {
	var angle dragon.Angle
	if arg == "" {
		angle = getAngle()
	} else {
		var err error
		angle, err = dragon.ParseAngle(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not read angle :(. Here's why: %v.\n", err)
			angle = getAngle()
		}
	}

	converted := angle.ToRadians()
	if angle.IsRadians() {
		converted = angle.ToDegrees()
	}
	fmt.Printf("The angle you entered is %v.\n", converted)
}

func runDragon() {
	fmt.Println("Ooh, a dragon!")

	canvas := window.New()
	background, err := dragon.ParseHexColor("#112244")
	if err != nil {
		log.Fatal(err)
	}
	canvas.SetBackground(background)
	canvas.SetTitle("Ooh, a dragon!")
	canvas.EnterFullscreen()

	dragon.DrawDragon(canvas, dragon.Deg(-90), 11, dragon.RGB(0, 0, 0), dragon.RGB(255, 0, 255))

	if err := canvas.Run(); err != nil {
		log.Fatalf("Could not draw the dragon :(. Here's why: %v", err)
	}
}

func main() {
	log.SetFlags(0)

	var (
		text     string
		angleArg string
		drawFlag bool
	)
	flag.StringVar(&text, "text", "", "autistify and shout a `PHRASE`")
	flag.StringVar(&text, "t", "", "shorthand for -text")
	flag.StringVar(&angleArg, "angle", "", "convert an `ANGLE` between degrees and radians")
	flag.StringVar(&angleArg, "a", "", "shorthand for -angle")
	flag.BoolVar(&drawFlag, "dragon", false, "draw a dragon")
	flag.BoolVar(&drawFlag, "d", false, "shorthand for -dragon")
	flag.Parse()

	// With no arguments at all, fall back to the interactive text flow.
	if flag.NFlag() == 0 && flag.NArg() == 0 {
		runText("")
		return
	}

	given := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { given[f.Name] = true })

	if given["text"] || given["t"] {
		runText(text)
	}
	if given["angle"] || given["a"] {
		runAngle(angleArg)
	}
	if drawFlag {
		runDragon()
	}
}
