// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Inbound frame types (client → server)
const (
	CreateGame               = "CREATE_GAME"
	JoinGame                 = "JOIN_GAME"
	InitGame                 = "INIT_GAME"
	VerifyValue              = "VERIFY_VALUE"
	ClearValue               = "CLEAR_VALUE"
	EndTimer                 = "END_TIMER"
	SendReaction             = "SEND_REACTION"
	FetchGameRoomData        = "FETCH_GAME_ROOM_DATA"
	FetchGameBoardScreenData = "FETCH_GAME_BOARD_SCREEN_DATA"
)

// Outbound message types (server → client). This tag set is the wire
// contract with the existing client; any change breaks interop.
const (
	RoomCreated              = "ROOM_CREATED"
	RoomCreateFailed         = "ROOM_CREATE_FAILED"
	RoomJoined               = "ROOM_JOINED"
	RoomJoinFailed           = "ROOM_JOIN_FAILED"
	OpponentJoined           = "OPPONENT_JOINED"
	GameInitiated            = "GAME_INITIATED"
	OpponentGameInitiated    = "OPPONENT_GAME_INITIATED"
	BothUsersGameInitiated   = "BOTH_USERS_GAME_INITIATED"
	GameInitiateFailed       = "GAME_INITIATE_FAILED"
	CorrectCell              = "CORRECT_CELL"
	WrongCell                = "WRONG_CELL"
	OpponentCorrectCell      = "OPPONENT_CORRECT_CELL"
	OpponentMistake          = "OPPONENT_MISTAKE"
	YourMistakesComplete     = "YOUR_MISTAKES_COMPLETE"
	OpponentMistakesComplete = "OPPONENT_MISTAKES_COMPLETE"
	AlreadyOnCorrectPosition = "ALREADY_ON_CORRECT_POSITION"
	CellCleared              = "CELL_CLEARED"
	GameEnded                = "GAME_ENDED"
	GameAlreadyEnded         = "GAME_ALREADY_ENDED"
	GameAlreadyStarted       = "GAME_ALREADY_STARTED"
	GameNotStarted           = "GAME_NOT_STARTED"
	DataFetched              = "DATA_FETCHED"
	OpponentReaction         = "OPPONENT_REACTION"
)

// Game end reasons, sent in the GAME_ENDED result
const (
	MistakesComplete = "MISTAKES_COMPLETE"
	BoardComplete    = "BOARD_COMPLETE"
	TimerComplete    = "TIMER_COMPLETE"
)

// Winner value for a drawn timer expiry
const WinnerDraw = "draw"

// Frame is an inbound websocket frame.
type Frame struct {
	Type   string      `json:"type"`
	Params FrameParams `json:"params"`
}

// FrameParams carries the union of all inbound parameters. Index is a
// pointer so that a missing index can be told apart from cell 0.
type FrameParams struct {
	RoomID     string `json:"roomId"`
	Difficulty string `json:"difficulty"`
	GameTime   int    `json:"gameTime"`
	Index      *int   `json:"index"`
	Value      int    `json:"value"`
	ReactionID int    `json:"reactionId"`
}

// Outbound payloads. Field names are read verbatim by the client.

// TypeOnly is a bare {type} notification.
type TypeOnly struct {
	Type string `json:"type"`
}

type RoomCreatedMsg struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

type OpponentJoinedMsg struct {
	Type string             `json:"type"`
	Data OpponentJoinedData `json:"data"`
}

type OpponentJoinedData struct {
	JoinerID   string `json:"joinerId"`
	JoinerName string `json:"joinerName"`
	AvatarURL  string `json:"avatarUrl"`
}

type RoomJoinedMsg struct {
	Type string         `json:"type"`
	Data RoomJoinedData `json:"data"`
}

type RoomJoinedData struct {
	RoomID      string `json:"roomId"`
	CreatorID   string `json:"creatorId"`
	CreatorName string `json:"creatorName"`
	AvatarURL   string `json:"avatarUrl"`
}

type BothUsersGameInitiatedMsg struct {
	Type string            `json:"type"`
	Data GameInitiatedData `json:"data"`
}

type GameInitiatedData struct {
	InitialGameState []Cell     `json:"initialGameState"`
	CurrentGameState []Cell     `json:"currentGameState"`
	StartTime        int64      `json:"startTime"`
	GameDuration     int64      `json:"gameDuration"`
	Reactions        []Reaction `json:"reactions"`
}

// BoardUpdateMsg covers WRONG_CELL and YOUR_MISTAKES_COMPLETE.
type BoardUpdateMsg struct {
	Type             string `json:"type"`
	CurrentGameState []Cell `json:"currentGameState"`
	Mistakes         int    `json:"mistakes"`
}

type CorrectCellMsg struct {
	Type               string `json:"type"`
	PercentageComplete int    `json:"percentageComplete"`
	CurrentGameState   []Cell `json:"currentGameState"`
}

type OpponentCorrectCellMsg struct {
	Type               string `json:"type"`
	PercentageComplete int    `json:"percentageComplete"`
}

type OpponentMistakeMsg struct {
	Type     string `json:"type"`
	Mistakes int    `json:"mistakes"`
}

type OpponentMistakesCompleteMsg struct {
	Type             string `json:"type"`
	OpponentMistakes int    `json:"opponentMistakes"`
}

type CellClearedMsg struct {
	Type             string `json:"type"`
	CurrentGameState []Cell `json:"currentGameState"`
}

type GameEndedMsg struct {
	Type   string     `json:"type"`
	Result GameResult `json:"result"`
}

type GameResult struct {
	Winner                     string `json:"winner"`
	YourPercentageComplete     int    `json:"yourPercentageComplete"`
	OpponentPercentageComplete int    `json:"opponentPercentageComplete"`
	YourMistakes               int    `json:"yourMistakes"`
	OpponentMistakes           int    `json:"opponentMistakes"`
	YourTimeTaken              int64  `json:"yourTimeTaken"`
	OpponentTimeTaken          int64  `json:"opponentTimeTaken"`
	GameEndReason              string `json:"gameEndReason"`
}

type OpponentReactionMsg struct {
	Type     string   `json:"type"`
	Reaction Reaction `json:"reaction"`
}

// RoomDataMsg is the DATA_FETCHED reply for the lobby screen.
type RoomDataMsg struct {
	Type string   `json:"type"`
	Data RoomData `json:"data"`
}

type RoomData struct {
	RoomID        string        `json:"roomId"`
	Role          string        `json:"type"`
	Opponent      *RoomOpponent `json:"opponent,omitempty"`
	GameInitiated bool          `json:"gameInitiated"`
}

type RoomOpponent struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AvatarURL     string `json:"avatarUrl"`
	GameInitiated bool   `json:"gameInitiated"`
}

// BoardDataMsg is the DATA_FETCHED reply for the board screen.
type BoardDataMsg struct {
	Type string    `json:"type"`
	Data BoardData `json:"data"`
}

type BoardData struct {
	RoomID             string        `json:"roomId"`
	Role               string        `json:"type"`
	Opponent           BoardOpponent `json:"opponent"`
	InitialGameState   []Cell        `json:"initialGameState"`
	CurrentGameState   []Cell        `json:"currentGameState"`
	EmojiReactions     []Reaction    `json:"emojiReactions"`
	StartTime          int64         `json:"startTime"`
	GameDuration       int64         `json:"gameDuration"`
	Mistakes           int           `json:"mistakes"`
	PercentageComplete int           `json:"percentageComplete"`
}

type BoardOpponent struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	AvatarURL          string `json:"avatarUrl"`
	Mistakes           int    `json:"mistakes"`
	PercentageComplete int    `json:"percentageComplete"`
}
