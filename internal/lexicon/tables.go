package lexicon

import "github.com/dshills/prosecheck/internal/schema"

var weakWords = []string{
	"very", "really", "just", "literally", "actually", "basically", "quite",
	"rather", "somewhat", "pretty", "simply", "totally", "definitely",
	"probably", "maybe",
}

var fillerPhrases = []string{
	"in order to",
	"there is",
	"there are",
	"it is important to note that",
	"the fact that",
	"at this point in time",
	"due to the fact that",
	"for all intents and purposes",
	"in the event that",
	"it should be noted that",
	"needless to say",
	"as a matter of fact",
	"in terms of",
	"with regard to",
	"each and every",
	"first and foremost",
	"for the purpose of",
	"it goes without saying",
	"in spite of the fact that",
	"the reason why is that",
}

var cliches = []string{
	"at the end of the day",
	"think outside the box",
	"low-hanging fruit",
	"move the needle",
	"circle back",
	"touch base",
	"game changer",
	"paradigm shift",
	"synergy",
	"best of breed",
	"win-win",
	"deep dive",
	"take it to the next level",
	"on the same page",
	"hit the ground running",
	"in a nutshell",
	"tip of the iceberg",
	"the bottom line",
	"last but not least",
	"avoid it like the plague",
	"only time will tell",
	"a level playing field",
	"push the envelope",
	"cutting edge",
	"ballpark figure",
}

var complexWords = []Replacement{
	{From: "utilize", To: "use"},
	{From: "facilitate", To: "help/ease"},
	{From: "implement", To: "carry out/do"},
	{From: "demonstrate", To: "show"},
	{From: "approximately", To: "about"},
	{From: "commence", To: "start/begin"},
	{From: "terminate", To: "end/stop"},
	{From: "endeavor", To: "try"},
	{From: "sufficient", To: "enough"},
	{From: "subsequently", To: "later/then"},
	{From: "additionally", To: "also"},
	{From: "nevertheless", To: "still/but"},
	{From: "consequently", To: "so"},
	{From: "numerous", To: "many"},
	{From: "individuals", To: "people"},
	{From: "purchase", To: "buy"},
	{From: "assistance", To: "help"},
	{From: "methodology", To: "method"},
	{From: "leverage", To: "use"},
	{From: "optimize", To: "improve"},
	{From: "ascertain", To: "find out/learn"},
}

var passiveAuxiliaries = []string{"was", "were", "is", "are", "been", "being", "be"}

var irregularParticiples = []string{
	"written", "taken", "given", "made", "done", "seen", "known", "shown",
	"found", "thrown", "built", "sent", "told", "held", "brought", "bought",
	"caught", "taught", "thought", "chosen", "broken", "spoken", "stolen",
	"forgotten", "eaten", "driven", "drawn", "grown", "hidden", "beaten",
	"begun", "paid", "said", "sold", "left", "lost", "kept", "put", "set",
}

var stopWords = []string{
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from",
	"up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "once", "here", "there", "where", "why", "how", "all", "any",
	"both", "each", "few", "more", "most", "other", "some", "such", "than",
	"that", "this", "these", "those", "they", "them", "their", "what",
	"which", "who", "whom", "have", "has", "had", "were", "been", "being",
	"would", "could", "should", "will", "your", "yours", "very",
}

var toneWords = map[schema.Tone][]string{
	schema.ToneFormal: {
		"therefore", "furthermore", "moreover", "consequently", "hence",
		"thus", "regarding", "pursuant", "accordingly", "whereas", "herein",
		"notwithstanding", "shall", "respectfully", "sincerely",
	},
	schema.ToneCasual: {
		"hey", "yeah", "cool", "awesome", "gonna", "wanna", "stuff", "kinda",
		"okay", "ok", "lol", "guys", "totally", "super", "pretty",
	},
	schema.ToneConfident: {
		"definitely", "certainly", "absolutely", "clearly", "undoubtedly",
		"will", "must", "proven", "guarantee", "ensure", "confident",
		"always", "know", "strong",
	},
	schema.ToneAnalytical: {
		"analysis", "data", "evidence", "research", "therefore", "indicates",
		"suggests", "results", "percent", "hypothesis", "compare", "measure",
		"factor", "conclude", "study",
	},
	schema.ToneFriendly: {
		"thanks", "thank", "please", "happy", "glad", "appreciate", "welcome",
		"love", "wonderful", "great", "hope", "enjoy", "kind", "you",
	},
	schema.ToneUrgent: {
		"now", "immediately", "urgent", "asap", "deadline", "critical",
		"quickly", "today", "hurry", "important", "must", "instantly",
		"soon", "emergency",
	},
}

var typos = []Replacement{
	{From: "teh", To: "the"},
	{From: "recieve", To: "receive"},
	{From: "seperate", To: "separate"},
	{From: "occured", To: "occurred"},
	{From: "definately", To: "definitely"},
	{From: "untill", To: "until"},
	{From: "wich", To: "which"},
	{From: "thier", To: "their"},
	{From: "accomodate", To: "accommodate"},
	{From: "begining", To: "beginning"},
	{From: "beleive", To: "believe"},
	{From: "goverment", To: "government"},
	{From: "enviroment", To: "environment"},
	{From: "neccessary", To: "necessary"},
}
