package port

import "context"

type Prompter interface {
	// Say prints a line of text to the user.
	Say(text string)
	// AskInt prints question and reads an integer answer, returning domain.ErrInvalidInput when the answer is not one.
	AskInt(ctx context.Context, question string) (int, error)
}
