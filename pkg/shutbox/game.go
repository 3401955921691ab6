package shutbox

// Chooser selects numbers to remove for a roll. A nil or empty Solution
// means the chooser has no legal move and the game ends. Any non-empty
// Solution must be drawn from numbers, contain no repeats, and sum
// exactly to roll.
type Chooser interface {
	Choose(numbers []int, roll int) Solution
}

// Turn records one turn of a game: the roll and the numbers removed
// (empty on the final, losing turn).
type Turn struct {
	Roll    int      `json:"roll"`
	Removed Solution `json:"removed,omitempty"`
}

// Result is the outcome of a completed game.
type Result struct {
	Score int    `json:"score"`
	Turns int    `json:"turns"`
	Shut  bool   `json:"shut"`
	Trace []Turn `json:"trace,omitempty"`
}

// Play runs a single game from a full board: roll, ask the chooser,
// remove, repeat until the box is shut or the chooser declines. The final
// score is the sum of the numbers left on the board.
func Play(chooser Chooser, roller Roller) Result {
	return PlayFrom(NewBoard(), chooser, roller)
}

// PlayFrom runs a game starting from an arbitrary board state.
func PlayFrom(board Board, chooser Chooser, roller Roller) Result {
	var trace []Turn

	for !board.IsShut() {
		roll := RollForBoard(board, roller)
		choice := chooser.Choose(board, roll)
		trace = append(trace, Turn{Roll: roll, Removed: choice})
		if len(choice) == 0 {
			break
		}
		board = board.Remove(choice)
	}

	return Result{
		Score: board.Score(),
		Turns: len(trace),
		Shut:  board.IsShut(),
		Trace: trace,
	}
}
