package sentiment

// lexicon is an embedded AFINN-style valence table covering the affective
// vocabulary that actually shows up in video comments. Valences range -5..5.
var lexicon = map[string]int{
	"abandoned":     -2,
	"abuse":         -3,
	"abusive":       -3,
	"accept":        1,
	"accepted":      1,
	"accident":      -2,
	"ache":          -2,
	"achievement":   2,
	"admire":        3,
	"admired":       3,
	"adorable":      3,
	"adore":         3,
	"advantage":     2,
	"adventure":     2,
	"afraid":        -2,
	"aggressive":    -2,
	"agree":         1,
	"alarm":         -2,
	"alive":         1,
	"alone":         -2,
	"amazed":        2,
	"amazing":       4,
	"anger":         -3,
	"angry":         -3,
	"annoy":         -2,
	"annoyed":       -2,
	"annoying":      -2,
	"anxious":       -2,
	"apology":       -1,
	"appreciate":    2,
	"appreciated":   2,
	"approve":       2,
	"approved":      2,
	"argue":         -2,
	"arrogant":      -2,
	"ashamed":       -2,
	"attack":        -1,
	"attacked":      -1,
	"attractive":    2,
	"awesome":       4,
	"awful":         -3,
	"awkward":       -2,
	"bad":           -3,
	"badly":         -3,
	"bastard":       -5,
	"battle":        -1,
	"beautiful":     3,
	"beloved":       3,
	"benefit":       2,
	"best":          3,
	"betray":        -3,
	"betrayed":      -3,
	"better":        2,
	"bitter":        -2,
	"blame":         -2,
	"bless":         2,
	"blessed":       3,
	"blocked":       -1,
	"bored":         -2,
	"boring":        -3,
	"bother":        -2,
	"brave":         2,
	"breathtaking":  5,
	"brilliant":     4,
	"broke":         -1,
	"broken":        -1,
	"bullshit":      -4,
	"calm":          2,
	"cancel":        -1,
	"cancelled":     -1,
	"cancer":        -1,
	"care":          2,
	"careless":      -2,
	"celebrate":     3,
	"champion":      2,
	"charm":         3,
	"charming":      3,
	"cheat":         -3,
	"cheated":       -3,
	"cheer":         2,
	"cheerful":      2,
	"cherish":       2,
	"classic":       2,
	"clean":         2,
	"clever":        2,
	"collapse":      -2,
	"comfort":       2,
	"comfortable":   2,
	"complain":      -2,
	"complaint":     -2,
	"confident":     2,
	"confused":      -2,
	"confusing":     -2,
	"congrats":      2,
	"congratulations": 2,
	"cool":          1,
	"corrupt":       -3,
	"crap":          -3,
	"crash":         -2,
	"crashed":       -2,
	"crazy":         -2,
	"creative":      2,
	"creepy":        -2,
	"cried":         -2,
	"cringe":        -2,
	"cruel":         -3,
	"cry":           -1,
	"crying":        -2,
	"cute":          2,
	"damage":        -3,
	"damn":          -4,
	"danger":        -2,
	"dangerous":     -2,
	"dark":          -1,
	"dead":          -3,
	"death":         -2,
	"defeat":        -2,
	"defeated":      -2,
	"delicious":     3,
	"delight":       3,
	"delighted":     3,
	"denied":        -2,
	"deny":          -2,
	"depressed":     -2,
	"depressing":    -2,
	"desperate":     -3,
	"destroy":       -3,
	"destroyed":     -3,
	"die":           -3,
	"died":          -3,
	"dirty":         -2,
	"disappoint":    -2,
	"disappointed":  -2,
	"disappointing": -2,
	"disaster":      -2,
	"disgust":       -3,
	"disgusting":    -3,
	"dishonest":     -2,
	"dislike":       -2,
	"disrespect":    -2,
	"distrust":      -3,
	"disturbing":    -2,
	"dope":          3,
	"doubt":         -1,
	"drama":         -2,
	"dream":         1,
	"dumb":          -3,
	"dying":         -3,
	"eager":         2,
	"easy":          1,
	"ecstatic":      4,
	"elegant":       2,
	"embarrassed":   -2,
	"embarrassing":  -2,
	"empty":         -1,
	"encourage":     2,
	"encouraged":    2,
	"energetic":     2,
	"enjoy":         2,
	"enjoyed":       2,
	"enjoying":      2,
	"entertaining":  2,
	"enthusiastic":  3,
	"epic":          3,
	"error":         -2,
	"evil":          -3,
	"excellent":     3,
	"excited":       3,
	"excitement":    3,
	"exciting":      3,
	"exhausted":     -2,
	"fabulous":      4,
	"fail":          -2,
	"failed":        -2,
	"failure":       -2,
	"fair":          2,
	"faith":         1,
	"fake":          -3,
	"fantastic":     4,
	"fascinating":   3,
	"favorite":      2,
	"favourite":     2,
	"fear":          -2,
	"feared":        -2,
	"fine":          2,
	"fire":          -2,
	"flawless":      5,
	"forget":        -1,
	"forgive":       1,
	"fraud":         -4,
	"free":          1,
	"fresh":         1,
	"friendly":      2,
	"frustrated":    -2,
	"frustrating":   -2,
	"fun":           4,
	"funnier":       4,
	"funny":         4,
	"furious":       -3,
	"garbage":       -3,
	"generous":      2,
	"genius":        3,
	"gentle":        2,
	"gift":          2,
	"glad":          3,
	"glorious":      2,
	"god":           1,
	"good":          3,
	"gorgeous":      3,
	"grace":         1,
	"grateful":      3,
	"great":         3,
	"greatest":      3,
	"greed":         -3,
	"greedy":        -2,
	"grief":         -2,
	"gross":         -2,
	"happiness":     3,
	"happy":         3,
	"hard":          -1,
	"harm":          -2,
	"harmful":       -2,
	"hate":          -3,
	"hated":         -3,
	"hates":         -3,
	"hating":        -3,
	"hatred":        -3,
	"heartbreaking": -3,
	"heaven":        2,
	"hell":          -4,
	"help":          2,
	"helpful":       2,
	"helping":       2,
	"helpless":      -2,
	"hero":          2,
	"hilarious":     2,
	"honest":        2,
	"honor":         2,
	"hope":          2,
	"hopeful":       2,
	"hopeless":      -2,
	"horrible":      -3,
	"horrific":      -3,
	"horror":        -3,
	"hug":           2,
	"humble":        1,
	"hurt":          -2,
	"hurts":         -2,
	"idiot":         -3,
	"ignorant":      -2,
	"ignore":        -1,
	"ignored":       -2,
	"impress":       3,
	"impressed":     3,
	"impressive":    3,
	"improve":       2,
	"improved":      2,
	"incredible":    4,
	"innovative":    2,
	"insane":        -2,
	"inspiration":   2,
	"inspirational": 2,
	"inspire":       2,
	"inspired":      2,
	"inspiring":     2,
	"insult":        -2,
	"insulted":      -2,
	"intelligent":   2,
	"interested":    2,
	"interesting":   2,
	"jealous":       -2,
	"joke":          2,
	"joy":           3,
	"joyful":        3,
	"justice":       2,
	"kill":          -3,
	"killed":        -3,
	"kind":          2,
	"kindness":      2,
	"laugh":         1,
	"laughed":       1,
	"laughing":      1,
	"lazy":          -1,
	"legend":        2,
	"legendary":     3,
	"liar":          -3,
	"lie":           -1,
	"lied":          -2,
	"limited":       -1,
	"lonely":        -2,
	"lose":          -3,
	"loser":         -3,
	"losing":        -3,
	"loss":          -3,
	"lost":          -3,
	"love":          3,
	"loved":         3,
	"lovely":        3,
	"loves":         3,
	"loving":        2,
	"lucky":         3,
	"mad":           -3,
	"magical":       3,
	"magnificent":   3,
	"masterpiece":   4,
	"mess":          -2,
	"miracle":       4,
	"miserable":     -3,
	"miss":          -1,
	"missed":        -1,
	"missing":       -1,
	"mistake":       -2,
	"mistakes":      -2,
	"motivated":     2,
	"motivation":    1,
	"nasty":         -3,
	"nervous":       -2,
	"nice":          3,
	"noble":         2,
	"nonsense":      -2,
	"obsessed":      2,
	"offend":        -2,
	"offended":      -2,
	"offensive":     -2,
	"outstanding":   5,
	"overrated":     -2,
	"pain":          -2,
	"painful":       -2,
	"panic":         -3,
	"passion":       1,
	"passionate":    2,
	"pathetic":      -2,
	"peace":         2,
	"peaceful":      2,
	"perfect":       3,
	"perfection":    3,
	"perfectly":     3,
	"phenomenal":    4,
	"pleasant":      3,
	"please":        1,
	"pleased":       3,
	"pleasure":      3,
	"poison":        -2,
	"poor":          -2,
	"positive":      2,
	"powerful":      2,
	"praise":        3,
	"pretty":        1,
	"problem":       -2,
	"problems":      -2,
	"promise":       1,
	"proud":         2,
	"punish":        -2,
	"quit":          -1,
	"rage":          -2,
	"reject":        -1,
	"rejected":      -2,
	"relax":         2,
	"relaxed":       2,
	"relief":        1,
	"relieved":      2,
	"remarkable":    2,
	"respect":       2,
	"respected":     2,
	"rich":          2,
	"ridiculous":    -3,
	"rip":           -2,
	"risk":          -2,
	"rob":           -2,
	"robbed":        -2,
	"rotten":        -3,
	"rude":          -2,
	"ruin":          -2,
	"ruined":        -2,
	"sad":           -2,
	"sadly":         -2,
	"sadness":       -2,
	"safe":          1,
	"satisfied":     2,
	"satisfying":    2,
	"save":          2,
	"saved":         2,
	"scam":          -2,
	"scandal":       -3,
	"scare":         -2,
	"scared":        -2,
	"scary":         -2,
	"screwed":       -2,
	"selfish":       -3,
	"sensational":   3,
	"shame":         -2,
	"share":         1,
	"shit":          -4,
	"shock":         -2,
	"shocked":       -2,
	"shocking":      -2,
	"sick":          -2,
	"silly":         -1,
	"sincere":       2,
	"smart":         1,
	"smile":         2,
	"smiling":       2,
	"solid":         2,
	"solution":      1,
	"solved":        2,
	"sorry":         -1,
	"spam":          -2,
	"spectacular":   3,
	"stole":         -2,
	"stolen":        -2,
	"stop":          -1,
	"strength":      2,
	"stress":        -1,
	"stressed":      -2,
	"strong":        2,
	"struggle":      -2,
	"struggling":    -2,
	"stunning":      4,
	"stupid":        -2,
	"succeed":       3,
	"success":       2,
	"successful":    3,
	"suck":          -3,
	"sucks":         -3,
	"suffer":        -2,
	"suffering":     -2,
	"super":         3,
	"superb":        5,
	"support":       2,
	"supported":     2,
	"sweet":         2,
	"talent":        2,
	"talented":      2,
	"terrible":      -3,
	"terribly":      -3,
	"terrific":      4,
	"terror":        -3,
	"thank":         2,
	"thankful":      2,
	"thanks":        2,
	"threat":        -2,
	"thrilled":      5,
	"tired":         -2,
	"tough":         -2,
	"toxic":         -3,
	"tragedy":       -2,
	"tragic":        -2,
	"trash":         -2,
	"trouble":       -2,
	"true":          2,
	"trust":         1,
	"trusted":       2,
	"ugly":          -3,
	"unbelievable":  -1,
	"uncomfortable": -2,
	"underrated":    2,
	"unfair":        -2,
	"unhappy":       -2,
	"unique":        2,
	"upset":         -2,
	"useful":        2,
	"useless":       -2,
	"vibrant":       3,
	"vicious":       -2,
	"victim":        -3,
	"victory":       3,
	"violence":      -3,
	"violent":       -3,
	"vulnerable":    -2,
	"want":          1,
	"war":           -2,
	"warm":          1,
	"waste":         -1,
	"wasted":        -2,
	"weak":          -2,
	"wealth":        3,
	"weird":         -2,
	"welcome":       2,
	"win":           4,
	"winner":        4,
	"winning":       4,
	"wish":          1,
	"won":           3,
	"wonderful":     4,
	"worn":          -1,
	"worried":       -3,
	"worry":         -3,
	"worse":         -3,
	"worst":         -3,
	"worth":         2,
	"worthless":     -2,
	"worthy":        2,
	"wow":           4,
	"wrong":         -2,
	"wtf":           -4,
}
