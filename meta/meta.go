// meta/meta.go
package meta

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// SearchDepth is the default cutoff depth (in plies) of the computer's search.
const SearchDepth = 4

// CornerWeight scales the corner occupancy term of the evaluation.
const CornerWeight = 1000

// ClosenessWeight scales the corner closeness term of the evaluation.
const ClosenessWeight = 10

// MobilityWeight scales the mobility term of the mobility evaluation.
const MobilityWeight = 5

// LogFile is where play mode logs go, the terminal belongs to the board.
const LogFile = "othello.log"

// ExperimentGames is the number of games per matchup.
const ExperimentGames = 10

// ExperimentDir is the root directory of the experiment records.
const ExperimentDir = "experiments"
