package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"storefront-service/internal/domain/entities"
)

// ChatState names one conversational state of the support chat. Home is
// both the initial state and the universal fallback.
type ChatState string

const (
	ChatStateHome          ChatState = "HOME"
	ChatStateOrderTracking ChatState = "ORDER_TRACKING"
	ChatStateInventory     ChatState = "INVENTORY"
	ChatStateEducation     ChatState = "EDUCATION"
)

// QuickReply is a selectable canned option offered with a chat reply.
type QuickReply struct {
	ID    string
	Label string
}

// ChatReply is the scripted response plus the successor state. The
// dialogue is a strict Mealy machine: reply and next state depend only on
// the current state and the input.
type ChatReply struct {
	Text    string
	Options []QuickReply
	Next    ChatState
}

const (
	optionTrackOrder = "track_order"
	optionCheckStock = "check_stock"
	optionEducation  = "education"
	optionPolicies   = "policies"
	optionHuman      = "human"
	optionMainMenu   = "main_menu"
	optionCancel     = "cancel_order"
	optionEduCut     = "edu_cut"
	optionEduColor   = "edu_color"
	optionEduClarity = "edu_clarity"
)

var orderNumberPattern = regexp.MustCompile(`#?\d{4}`)

// chatRule matches an intent within one state: an exact quick-reply id,
// case-insensitive keyword substrings on free text, or a pattern.
type chatRule struct {
	optionID string
	keywords []string
	pattern  *regexp.Regexp
	respond  func(input string) ChatReply
}

func (r chatRule) matches(optionID, text string) bool {
	if r.optionID != "" && optionID == r.optionID {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return r.pattern != nil && r.pattern.MatchString(text)
}

// ChatUseCase drives the scripted support dialogue. The state x intent
// table is built once; the inventory intent reads the live catalog.
type ChatUseCase struct {
	catalog    *CatalogUseCase
	replyDelay time.Duration
	rules      map[ChatState][]chatRule
	fallbacks  map[ChatState]func() ChatReply
}

func NewChatUseCase(catalog *CatalogUseCase, replyDelay time.Duration) *ChatUseCase {
	uc := &ChatUseCase{
		catalog:    catalog,
		replyDelay: replyDelay,
	}

	// One rule per shape, so both the offered quick-reply id and a free-text
	// mention of the shape resolve to the same stock lookup.
	inventoryRules := make([]chatRule, 0, len(entities.DiamondShapes))
	for _, shape := range entities.DiamondShapes {
		shape := shape
		inventoryRules = append(inventoryRules, chatRule{
			optionID: shapeOptionID(shape),
			keywords: []string{strings.ToLower(shape)},
			respond:  func(string) ChatReply { return uc.shapeStock(shape) },
		})
	}

	uc.rules = map[ChatState][]chatRule{
		ChatStateHome: {
			{optionID: optionTrackOrder, keywords: []string{"order", "track"}, respond: uc.askOrderNumber},
			{optionID: optionCheckStock, keywords: []string{"stock"}, respond: uc.askShape},
			{optionID: optionEducation, keywords: []string{"learn"}, respond: uc.educationIntro},
			{optionID: optionPolicies, keywords: []string{"shipping", "return"}, respond: uc.policies},
			{optionID: optionHuman, keywords: []string{"human", "agent"}, respond: uc.handoff},
		},
		ChatStateOrderTracking: {
			{optionID: optionCancel, keywords: []string{"cancel"}, respond: func(string) ChatReply { return uc.Welcome() }},
			{pattern: orderNumberPattern, respond: uc.orderFound},
		},
		ChatStateInventory: inventoryRules,
		ChatStateEducation: {
			{optionID: optionEduCut, keywords: []string{"cut"}, respond: uc.educationCut},
			{optionID: optionEduColor, keywords: []string{"color", "colour"}, respond: uc.educationColor},
			{optionID: optionEduClarity, keywords: []string{"clarity"}, respond: uc.educationClarity},
		},
	}

	uc.fallbacks = map[ChatState]func() ChatReply{
		ChatStateHome: func() ChatReply {
			return ChatReply{
				Text:    "I can help with orders, stock, diamond education, or store policies. Please pick an option.",
				Options: mainMenuOptions(),
				Next:    ChatStateHome,
			}
		},
		ChatStateOrderTracking: func() ChatReply {
			return ChatReply{
				Text:    "That does not look like an order number — it is four digits, e.g. #1024.",
				Options: []QuickReply{{ID: optionCancel, Label: "Cancel"}},
				Next:    ChatStateOrderTracking,
			}
		},
		ChatStateInventory: func() ChatReply {
			return ChatReply{
				Text:    "I did not recognise that shape. Please choose one:",
				Options: shapeOptions(4),
				Next:    ChatStateInventory,
			}
		},
		ChatStateEducation: func() ChatReply {
			reply := uc.educationIntro("")
			return reply
		},
	}

	return uc
}

// Welcome is the greeting shown when the chat opens or resets.
func (uc *ChatUseCase) Welcome() ChatReply {
	return ChatReply{
		Text:    "Welcome to Lab Diamond Studio! How can I help you today?",
		Options: mainMenuOptions(),
		Next:    ChatStateHome,
	}
}

// Respond answers one message. A "main menu" intent resets to Home from
// any state; otherwise the current state's rules are tried in order and
// unmatched input falls back to re-listing that state's options. The
// scripted typing delay is simulated before the reply is produced.
func (uc *ChatUseCase) Respond(ctx context.Context, state ChatState, optionID, text string) (ChatReply, error) {
	if uc.replyDelay > 0 {
		select {
		case <-ctx.Done():
			return ChatReply{}, ctx.Err()
		case <-time.After(uc.replyDelay):
		}
	}

	lower := strings.ToLower(text)
	if optionID == optionMainMenu || strings.Contains(lower, "menu") || strings.Contains(lower, "start") || strings.Contains(lower, "reset") {
		return uc.Welcome(), nil
	}

	for _, rule := range uc.rules[state] {
		if rule.matches(optionID, text) {
			return rule.respond(text), nil
		}
	}

	fallback, ok := uc.fallbacks[state]
	if !ok {
		return uc.Welcome(), nil
	}
	return fallback(), nil
}

func (uc *ChatUseCase) askOrderNumber(string) ChatReply {
	return ChatReply{
		Text:    "Sure — what is your order number? It looks like #1024.",
		Options: []QuickReply{{ID: optionCancel, Label: "Cancel"}},
		Next:    ChatStateOrderTracking,
	}
}

func (uc *ChatUseCase) orderFound(string) ChatReply {
	return ChatReply{
		Text:    "Good news — that order is confirmed and in production. You will receive a tracking link by email the moment it ships.",
		Options: []QuickReply{mainMenuOption()},
		Next:    ChatStateHome,
	}
}

func (uc *ChatUseCase) askShape(string) ChatReply {
	return ChatReply{
		Text:    "Which shape are you interested in?",
		Options: shapeOptions(5),
		Next:    ChatStateInventory,
	}
}

// shapeStock answers the inventory intent from the live catalog: number
// of matching unsold items and the cheapest price among them.
func (uc *ChatUseCase) shapeStock(shape string) ChatReply {
	count, cheapest := uc.catalog.ShapeStock(shape)
	text := fmt.Sprintf("We have limited stock of %s diamonds right now. Please check the main grid.", shape)
	if count > 0 {
		text = fmt.Sprintf("%s: %d in stock right now, from CHF %d.", shape, count, cheapest)
	}
	return ChatReply{
		Text:    text,
		Options: []QuickReply{{ID: optionCheckStock, Label: "Check another shape"}, mainMenuOption()},
		Next:    ChatStateHome,
	}
}

func (uc *ChatUseCase) educationIntro(string) ChatReply {
	return ChatReply{
		Text:    "Happy to help! A diamond's character comes down to its grading. Which one should I explain?",
		Options: educationOptions(),
		Next:    ChatStateEducation,
	}
}

func (uc *ChatUseCase) educationCut(string) ChatReply {
	return ChatReply{
		Text:    "Cut describes how well the facets interact with light. Excellent and Ideal cuts return the most brilliance — every stone we grow is cut to that standard.",
		Options: educationOptions(),
		Next:    ChatStateEducation,
	}
}

func (uc *ChatUseCase) educationColor(string) ChatReply {
	return ChatReply{
		Text:    "Colour grades run from D (completely colourless) downwards. D to F stones are colourless; G and H are near-colourless and excellent value.",
		Options: educationOptions(),
		Next:    ChatStateEducation,
	}
}

func (uc *ChatUseCase) educationClarity(string) ChatReply {
	return ChatReply{
		Text:    "Clarity measures internal inclusions under 10x magnification. VS1 and above look flawless to the naked eye.",
		Options: educationOptions(),
		Next:    ChatStateEducation,
	}
}

func (uc *ChatUseCase) policies(string) ChatReply {
	return ChatReply{
		Text: "Shipping is free and insured on orders of CHF 3000 and above; below that a flat CHF 49 applies.\n\n" +
			"Returns are accepted within 30 days in original condition. Custom pieces are made to order and excluded.",
		Options: []QuickReply{mainMenuOption()},
		Next:    ChatStateHome,
	}
}

func (uc *ChatUseCase) handoff(string) ChatReply {
	return ChatReply{
		Text:    "A specialist will get back to you within one business day. Leave your email in the order form and mention this chat.",
		Options: []QuickReply{mainMenuOption()},
		Next:    ChatStateHome,
	}
}

func mainMenuOptions() []QuickReply {
	return []QuickReply{
		{ID: optionTrackOrder, Label: "Track my order"},
		{ID: optionCheckStock, Label: "Check diamond stock"},
		{ID: optionEducation, Label: "Diamond education"},
		{ID: optionPolicies, Label: "Shipping & returns"},
		{ID: optionHuman, Label: "Talk to a specialist"},
	}
}

func mainMenuOption() QuickReply {
	return QuickReply{ID: optionMainMenu, Label: "Main menu"}
}

func shapeOptionID(shape string) string {
	return "shape_" + shape
}

func shapeOptions(n int) []QuickReply {
	if n > len(entities.DiamondShapes) {
		n = len(entities.DiamondShapes)
	}
	options := make([]QuickReply, 0, n)
	for _, s := range entities.DiamondShapes[:n] {
		options = append(options, QuickReply{ID: shapeOptionID(s), Label: s})
	}
	return options
}

func educationOptions() []QuickReply {
	return []QuickReply{
		{ID: optionEduCut, Label: "Cut"},
		{ID: optionEduColor, Label: "Color"},
		{ID: optionEduClarity, Label: "Clarity"},
		mainMenuOption(),
	}
}
