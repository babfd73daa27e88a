package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"insultbot/core"
	"insultbot/models"
)

// Discord user mentions: <@USER_ID> or <@!USER_ID>
var mentionRegex = regexp.MustCompile(`^<@!?([^>]*)>$`)

// ParseInsultCommand extracts the insult target from raw message content.
// It returns nil with no error when the content is not an insult command.
func ParseInsultCommand(content string) (*models.InsultCommand, error) {
	if !strings.HasPrefix(content, models.InsultCommandPrefix) {
		return nil, nil
	}

	remainder := content[len(models.InsultCommandPrefix):]
	if remainder != "" {
		// "!insultfoo" is a different word, not our command
		r, _ := utf8.DecodeRuneInString(remainder)
		if !unicode.IsSpace(r) {
			return nil, nil
		}
	}

	target := strings.TrimSpace(remainder)
	if target == "" {
		return nil, core.ErrMissingTarget
	}

	if match := mentionRegex.FindStringSubmatch(target); match != nil {
		userID, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", core.ErrInvalidMention, match[1])
		}
		return &models.InsultCommand{
			Kind:   models.TargetKindMention,
			UserID: strconv.FormatUint(userID, 10),
		}, nil
	}

	return &models.InsultCommand{
		Kind: models.TargetKindName,
		Name: target,
	}, nil
}
