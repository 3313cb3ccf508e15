package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"sync"
	"time"

	"greedychess/bots"
	"greedychess/config"
	"greedychess/rules"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	whitePiece  = color.RGBA{250, 250, 250, 255}
	blackPiece  = color.RGBA{30, 30, 30, 255}
)

type Game struct {
	mu           sync.Mutex
	chessGame    *chess.Game
	evaluator    *bots.Evaluator
	eval         float64
	selected     chess.Square
	dragging     *chess.Piece
	dragX, dragY int
	playerColor  chess.Color
	gameStarted  bool
	botThinking  bool
	boardOffsetX int
	boardOffsetY int
	bots         []bots.ChessBot
	currentBot   int
}

func NewGame(cfg *config.Config, seed uint64) *Game {
	// Получаем размеры экрана
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	// Вычисляем размер клетки (оставляем место для информации сверху)
	boardHeight := screenHeight - 80
	squareSize = boardHeight / 8
	if screenWidth/8 < squareSize {
		squareSize = screenWidth / 8
	}

	// Центрируем доску
	boardWidth := squareSize * 8
	return &Game{
		evaluator:    bots.NewEvaluator(cfg),
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
		bots: []bots.ChessBot{
			bots.NewGreedyBot(cfg, rand.New(rand.NewSource(seed))),
			bots.NewRandomBot(rand.New(rand.NewSource(seed + 1))),
		},
	}
}

func (g *Game) bot() bots.ChessBot {
	return g.bots[g.currentBot]
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.currentBot = (g.currentBot + 1) % len(g.bots)
		log.Info().Str("bot", g.bot().Name()).Msg("bot switched")
	}

	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-20 {
					g.playerColor = chess.White
					g.startGame()
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					g.playerColor = chess.Black
					g.startGame()
				}
			}
		}
		return nil
	}

	// Обработка хода игрока
	if g.chessGame.Position().Turn() == g.playerColor && !g.botThinking {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if sq, ok := g.squareUnderCursor(); ok {
				piece := g.chessGame.Position().Board().Piece(sq)
				if piece != chess.NoPiece && piece.Color() == g.playerColor {
					g.selected = sq
					g.dragging = &piece
				}
			}
		}
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging != nil {
		if target, ok := g.squareUnderCursor(); ok {
			if move := findMove(g.chessGame, g.selected, target); move != nil {
				if err := g.chessGame.Move(move); err == nil {
					g.afterMove()
				}
			}
		}
		g.selected = 0
		g.dragging = nil
	}

	if !g.botThinking && g.chessGame.Outcome() == chess.NoOutcome && g.chessGame.Position().Turn() != g.playerColor {
		g.botThinking = true
		go func() {
			time.Sleep(300 * time.Millisecond) // Небольшая задержка
			g.makeBotMove()
		}()
	}

	return nil
}

func (g *Game) squareUnderCursor() (chess.Square, bool) {
	x, y := ebiten.CursorPosition()
	x -= g.boardOffsetX
	y -= g.boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return chess.NoSquare, false
	}
	file := x / squareSize
	rank := 7 - y/squareSize
	return chess.Square(file + rank*8), true
}

func (g *Game) startGame() {
	g.chessGame = chess.NewGame()
	g.gameStarted = true
	g.afterMove()
}

func (g *Game) afterMove() {
	eval, err := g.evaluator.Evaluate(rules.FromPosition(g.chessGame.Position()))
	if err != nil {
		log.Warn().Err(err).Msg("evaluation failed")
		return
	}
	g.eval = eval
}

func (g *Game) makeBotMove() {
	g.mu.Lock()
	game, bot := g.chessGame, g.bot()
	if game == nil || game.Outcome() != chess.NoOutcome || game.Position().Turn() == g.playerColor {
		g.botThinking = false
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	// Доска продолжает рисоваться, пока бот считает на копии партии
	start := time.Now()
	move, err := bots.MoveOnClone(bot, game)

	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() { g.botThinking = false }()

	if err != nil {
		log.Error().Err(err).Str("bot", bot.Name()).Msg("bot failed to move")
		return
	}
	if err := game.Move(move); err != nil {
		log.Error().Err(err).Str("move", move.String()).Msg("bot move rejected")
		return
	}
	g.afterMove()
	log.Debug().
		Str("bot", bot.Name()).
		Str("move", move.String()).
		Dur("took", time.Since(start)).
		Float64("eval", g.eval).
		Msg("bot moved")
}

func findMove(game *chess.Game, from, to chess.Square) *chess.Move {
	if game == nil {
		return nil
	}
	var found *chess.Move
	for _, m := range game.ValidMoves() {
		if m.S1() == from && m.S2() == to {
			// всегда превращаемся в ферзя
			if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
				return m
			}
			found = m
		}
	}
	return found
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ebitenutil.DebugPrintAt(screen, "Бот: "+g.bot().Name()+" (B - сменить)", screenWidth-260, 20)

	if !g.gameStarted {
		// Экран выбора цвета
		ebitenutil.DebugPrintAt(screen, "Шахматы на Go", screenWidth/2-70, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Выберите цвет фигур:", screenWidth/2-100, screenHeight/2)

		btnY := float32(screenHeight/2 + 100)
		vector.DrawFilledRect(screen, float32(screenWidth/2-220), btnY, 200, 60, color.RGBA{200, 200, 200, 255}, false)
		ebitenutil.DebugPrintAt(screen, "Играть белыми", screenWidth/2-170, int(btnY)+20)
		vector.DrawFilledRect(screen, float32(screenWidth/2+20), btnY, 200, 60, color.RGBA{50, 50, 50, 255}, false)
		ebitenutil.DebugPrintAt(screen, "Играть черными", screenWidth/2+70, int(btnY)+20)
		return
	}

	// Рисуем доску
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			clr := lightSquare
			if (x+y)%2 == 1 {
				clr = darkSquare
			}
			vector.DrawFilledRect(screen,
				float32(x*squareSize+g.boardOffsetX), float32(y*squareSize+g.boardOffsetY),
				float32(squareSize), float32(squareSize), clr, false)
		}
	}

	// Рисуем фигуры
	board := g.chessGame.Position().Board()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := chess.Square(x + (7-y)*8)
			piece := board.Piece(sq)
			if piece == chess.NoPiece || (g.dragging != nil && sq == g.selected) {
				continue
			}
			drawPiece(screen, piece,
				float32(x*squareSize+g.boardOffsetX+squareSize/2),
				float32(y*squareSize+g.boardOffsetY+squareSize/2))
		}
	}

	// Рисуем перетаскиваемую фигуру
	if g.dragging != nil {
		drawPiece(screen, *g.dragging, float32(g.dragX), float32(g.dragY))
	}

	// Статус игры
	status := "Ваш ход"
	if g.botThinking {
		status = "Бот думает..."
	} else if g.chessGame.Position().Turn() != g.playerColor {
		status = "Ход бота"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s   Оценка: %+.2f", status, g.eval), 20, 20)

	if outcome := g.chessGame.Outcome(); outcome != chess.NoOutcome {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Результат: %s (%v)", outcome, g.chessGame.Method()), screenWidth/2-80, 20)
	}
}

func drawPiece(screen *ebiten.Image, piece chess.Piece, cx, cy float32) {
	fill, ink := whitePiece, blackPiece
	if piece.Color() == chess.Black {
		fill, ink = blackPiece, whitePiece
	}
	r := float32(squareSize) * 0.38
	vector.DrawFilledCircle(screen, cx, cy, r, ink, true)
	vector.DrawFilledCircle(screen, cx, cy, r-2, fill, true)

	// DebugPrint всегда рисует белым, поэтому на светлых фигурах
	// подкладываем тёмную плашку под букву
	if piece.Color() == chess.White {
		vector.DrawFilledRect(screen, cx-5, cy-9, 10, 16, blackPiece, false)
	}
	ebitenutil.DebugPrintAt(screen, piece.Type().String(), int(cx)-3, int(cy)-8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML file with evaluator weights")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for the bots")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	game := NewGame(cfg, *seed)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Шахматы на Go - Полноэкранный режим")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
