package bible

import "time"

// DailyVerseEntry is one entry of the curated daily verse rotation.
type DailyVerseEntry struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Preview string `json:"preview"`
}

var dailyVerses = []DailyVerseEntry{
	{Book: "PSA", Chapter: 23, Verse: 1, Preview: "여호와는 나의 목자시니 내가 부족함이 없으리로다"},
	{Book: "PSA", Chapter: 23, Verse: 4, Preview: "내가 사망의 음침한 골짜기로 다닐지라도 해를 두려워하지 않을 것은 주께서 나와 함께 하심이라"},
	{Book: "PSA", Chapter: 27, Verse: 1, Preview: "여호와는 나의 빛이요 나의 구원이시니 내가 누구를 두려워하리요"},
	{Book: "PSA", Chapter: 37, Verse: 4, Preview: "또 여호와를 기뻐하라 그가 네 마음의 소원을 네게 이루어 주시리로다"},
	{Book: "PSA", Chapter: 46, Verse: 1, Preview: "하나님은 우리의 피난처시요 힘이시니 환난 중에 만날 큰 도움이시라"},
	{Book: "PSA", Chapter: 46, Verse: 10, Preview: "이르시되 너희는 가만히 있어 내가 하나님 됨을 알지어다"},
	{Book: "PSA", Chapter: 51, Verse: 10, Preview: "하나님이여 내 속에 정한 마음을 창조하시고 내 안에 정직한 영을 새롭게 하소서"},
	{Book: "PSA", Chapter: 91, Verse: 1, Preview: "지존자의 은밀한 곳에 거주하는 자는 전능자의 그늘 아래에 살리로다"},
	{Book: "PSA", Chapter: 91, Verse: 2, Preview: "나는 여호와를 가리켜 말하기를 그는 나의 피난처요 나의 요새요 나의 하나님이시라"},
	{Book: "PSA", Chapter: 100, Verse: 3, Preview: "여호와가 우리 하나님이신 줄 너희는 알지어다 그는 우리를 지으신 이요"},
	{Book: "PSA", Chapter: 103, Verse: 1, Preview: "내 영혼아 여호와를 송축하라 내 속에 있는 것들아 다 그의 거룩한 이름을 송축하라"},
	{Book: "PSA", Chapter: 119, Verse: 105, Preview: "주의 말씀은 내 발에 등이요 내 길에 빛이니이다"},
	{Book: "PSA", Chapter: 121, Verse: 1, Preview: "내가 산을 향하여 눈을 들리라 나의 도움이 어디서 올까"},
	{Book: "PSA", Chapter: 139, Verse: 14, Preview: "내가 주께 감사하옴은 나를 지으심이 심히 기묘하심이라"},
	{Book: "PSA", Chapter: 150, Verse: 6, Preview: "호흡이 있는 자마다 여호와를 찬양할지어다 할렐루야"},
	{Book: "PRO", Chapter: 3, Verse: 5, Preview: "너는 마음을 다하여 여호와를 의뢰하고 네 명철을 의지하지 말라"},
	{Book: "PRO", Chapter: 3, Verse: 6, Preview: "너는 범사에 그를 인정하라 그리하면 네 길을 지도하시리라"},
	{Book: "PRO", Chapter: 4, Verse: 23, Preview: "모든 지킬 만한 것 중에 더욱 네 마음을 지키라 생명의 근원이 이에서 남이니라"},
	{Book: "PRO", Chapter: 16, Verse: 3, Preview: "너의 행사를 여호와께 맡기라 그리하면 네가 경영하는 것이 이루어지리라"},
	{Book: "PRO", Chapter: 18, Verse: 10, Preview: "여호와의 이름은 견고한 망대라 의인은 그리로 달려가서 안전함을 얻느니라"},
	{Book: "PRO", Chapter: 22, Verse: 6, Preview: "마땅히 행할 길을 아이에게 가르치라 그리하면 늙어도 그것을 떠나지 아니하리라"},
	{Book: "ISA", Chapter: 40, Verse: 31, Preview: "오직 여호와를 앙망하는 자는 새 힘을 얻으리니 독수리가 날개치며 올라감 같을 것이요"},
	{Book: "ISA", Chapter: 41, Verse: 10, Preview: "두려워하지 말라 내가 너와 함께 함이라 놀라지 말라 나는 네 하나님이 됨이라"},
	{Book: "ISA", Chapter: 43, Verse: 1, Preview: "야곱아 너를 창조하신 여호와께서 지금 말씀하시느니라 이스라엘아 너를 지으신 이가 말씀하시느니라 두려워하지 말라"},
	{Book: "ISA", Chapter: 43, Verse: 2, Preview: "네가 물 가운데로 지날 때에 내가 너와 함께 할 것이라"},
	{Book: "ISA", Chapter: 53, Verse: 5, Preview: "그가 찔림은 우리의 허물 때문이요 그가 상함은 우리의 죄악 때문이라"},
	{Book: "ISA", Chapter: 55, Verse: 8, Preview: "이는 내 생각이 너희의 생각과 다르며 내 길은 너희의 길과 다름이니라"},
	{Book: "ISA", Chapter: 55, Verse: 11, Preview: "내 입에서 나가는 말도 이와 같이 헛되이 내게로 되돌아오지 아니하고"},
	{Book: "JER", Chapter: 29, Verse: 11, Preview: "너희를 향한 나의 생각을 내가 아나니 평안이요 재앙이 아니니라 너희에게 미래와 희망을 주는 것이니라"},
	{Book: "JER", Chapter: 33, Verse: 3, Preview: "너는 내게 부르짖으라 내가 네게 응답하겠고 네가 알지 못하는 크고 은밀한 일을 네게 보이리라"},
	{Book: "JER", Chapter: 1, Verse: 5, Preview: "내가 너를 모태에 짓기 전에 너를 알았고 네가 배에서 나오기 전에 너를 성별하였고"},
	{Book: "GEN", Chapter: 1, Verse: 1, Preview: "태초에 하나님이 천지를 창조하시니라"},
	{Book: "GEN", Chapter: 1, Verse: 27, Preview: "하나님이 자기 형상 곧 하나님의 형상대로 사람을 창조하시되 남자와 여자를 창조하시고"},
	{Book: "JOS", Chapter: 1, Verse: 9, Preview: "내가 네게 명령한 것이 아니냐 강하고 담대하라 두려워하지 말며 놀라지 말라 네가 어디로 가든지 네 하나님 여호와가 너와 함께 하느니라"},
	{Book: "MAT", Chapter: 5, Verse: 14, Preview: "너희는 세상의 빛이라 산 위에 있는 동네가 숨겨지지 못할 것이요"},
	{Book: "MAT", Chapter: 5, Verse: 16, Preview: "이같이 너희 빛이 사람 앞에 비치게 하여 그들로 너희 착한 행실을 보고 하늘에 계신 너희 아버지께 영광을 돌리게 하라"},
	{Book: "MAT", Chapter: 6, Verse: 33, Preview: "너희는 먼저 그의 나라와 그의 의를 구하라 그리하면 이 모든 것을 너희에게 더하시리라"},
	{Book: "MAT", Chapter: 6, Verse: 34, Preview: "내일 일을 위하여 염려하지 말라 내일 일은 내일이 염려할 것이요"},
	{Book: "MAT", Chapter: 7, Verse: 7, Preview: "구하라 그리하면 너희에게 주실 것이요 찾으라 그리하면 찾아낼 것이요 문을 두드리라 그리하면 너희에게 열릴 것이니"},
	{Book: "MAT", Chapter: 11, Verse: 28, Preview: "수고하고 무거운 짐 진 자들아 다 내게로 오라 내가 너희를 쉬게 하리라"},
	{Book: "MAT", Chapter: 11, Verse: 29, Preview: "나는 마음이 온유하고 겸손하니 나의 멍에를 메고 내게 배우라 그리하면 너희 마음이 쉼을 얻으리니"},
	{Book: "MAT", Chapter: 28, Verse: 19, Preview: "그러므로 너희는 가서 모든 민족을 제자로 삼아 아버지와 아들과 성령의 이름으로 세례를 베풀고"},
	{Book: "MAT", Chapter: 28, Verse: 20, Preview: "내가 세상 끝날까지 너희와 항상 함께 있으리라 하시니라"},
	{Book: "JHN", Chapter: 1, Verse: 1, Preview: "태초에 말씀이 계시니라 이 말씀이 하나님과 함께 계셨으니 이 말씀은 곧 하나님이시니라"},
	{Book: "JHN", Chapter: 1, Verse: 12, Preview: "영접하는 자 곧 그 이름을 믿는 자들에게는 하나님의 자녀가 되는 권세를 주셨으니"},
	{Book: "JHN", Chapter: 3, Verse: 16, Preview: "하나님이 세상을 이처럼 사랑하사 독생자를 주셨으니 이는 그를 믿는 자마다 멸망하지 않고 영생을 얻게 하려 하심이라"},
	{Book: "JHN", Chapter: 8, Verse: 32, Preview: "진리를 알지니 진리가 너희를 자유롭게 하리라"},
	{Book: "JHN", Chapter: 10, Verse: 10, Preview: "내가 온 것은 양으로 생명을 얻게 하고 더 풍성히 얻게 하려는 것이라"},
	{Book: "JHN", Chapter: 11, Verse: 25, Preview: "나는 부활이요 생명이니 나를 믿는 자는 죽어도 살겠고"},
	{Book: "JHN", Chapter: 13, Verse: 34, Preview: "새 계명을 너희에게 주노니 서로 사랑하라 내가 너희를 사랑한 것 같이 너희도 서로 사랑하라"},
	{Book: "JHN", Chapter: 14, Verse: 6, Preview: "예수께서 이르시되 내가 곧 길이요 진리요 생명이니 나로 말미암지 않고는 아버지께로 올 자가 없느니라"},
	{Book: "JHN", Chapter: 14, Verse: 27, Preview: "평안을 너희에게 끼치노니 곧 나의 평안을 너희에게 주노라 내가 너희에게 주는 것은 세상이 주는 것과 같지 아니하니라"},
	{Book: "JHN", Chapter: 15, Verse: 5, Preview: "나는 포도나무요 너희는 가지라 그가 내 안에 내가 그 안에 거하면 사람이 열매를 많이 맺나니"},
	{Book: "JHN", Chapter: 15, Verse: 7, Preview: "너희가 내 안에 거하고 내 말이 너희 안에 거하면 무엇이든지 원하는 대로 구하라 그리하면 이루리라"},
	{Book: "JHN", Chapter: 16, Verse: 33, Preview: "이것을 너희에게 이르는 것은 너희로 내 안에서 평안을 누리게 하려 함이라 세상에서는 너희가 환난을 당하나 담대하라 내가 세상을 이기었노라"},
	{Book: "ROM", Chapter: 5, Verse: 8, Preview: "우리가 아직 죄인 되었을 때에 그리스도께서 우리를 위하여 죽으심으로 하나님께서 우리에 대한 자기의 사랑을 확증하셨느니라"},
	{Book: "ROM", Chapter: 8, Verse: 1, Preview: "그러므로 이제 그리스도 예수 안에 있는 자에게는 결코 정죄함이 없나니"},
	{Book: "ROM", Chapter: 8, Verse: 28, Preview: "우리가 알거니와 하나님을 사랑하는 자 곧 그의 뜻대로 부르심을 입은 자들에게는 모든 것이 합력하여 선을 이루느니라"},
	{Book: "ROM", Chapter: 8, Verse: 31, Preview: "만일 하나님이 우리를 위하시면 누가 우리를 대적하리요"},
	{Book: "ROM", Chapter: 8, Verse: 37, Preview: "이 모든 일에 우리를 사랑하시는 이로 말미암아 우리가 넉넉히 이기느니라"},
	{Book: "ROM", Chapter: 8, Verse: 38, Preview: "내가 확신하노니 사망이나 생명이나 천사들이나 권세자들이나 현재 일이나 장래 일이나 능력이나"},
	{Book: "ROM", Chapter: 10, Verse: 9, Preview: "네가 만일 네 입으로 예수를 주로 시인하며 또 하나님께서 그를 죽은 자 가운데서 살리신 것을 네 마음에 믿으면 구원을 받으리라"},
	{Book: "ROM", Chapter: 12, Verse: 1, Preview: "그러므로 형제들아 내가 하나님의 모든 자비하심으로 너희를 권하노니 너희 몸을 하나님이 기뻐하시는 거룩한 산 제물로 드리라"},
	{Book: "ROM", Chapter: 12, Verse: 2, Preview: "너희는 이 세대를 본받지 말고 오직 마음을 새롭게 함으로 변화를 받아 하나님의 선하시고 기뻐하시고 온전하신 뜻이 무엇인지 분별하도록 하라"},
	{Book: "1CO", Chapter: 10, Verse: 13, Preview: "사람이 감당할 시험 밖에는 너희가 당한 것이 없나니 오직 하나님은 미쁘사 너희가 감당하지 못할 시험 당함을 허락하지 아니하시고"},
	{Book: "1CO", Chapter: 13, Verse: 4, Preview: "사랑은 오래 참고 사랑은 온유하며 시기하지 아니하며 사랑은 자랑하지 아니하며 교만하지 아니하며"},
	{Book: "1CO", Chapter: 13, Verse: 13, Preview: "그런즉 믿음 소망 사랑 이 세 가지는 항상 있을 것인데 그 중의 제일은 사랑이라"},
	{Book: "2CO", Chapter: 5, Verse: 17, Preview: "그런즉 누구든지 그리스도 안에 있으면 새로운 피조물이라 이전 것은 지나갔으니 보라 새 것이 되었도다"},
	{Book: "2CO", Chapter: 12, Verse: 9, Preview: "내 은혜가 네게 족하도다 이는 내 능력이 약한 데서 온전하여짐이라"},
	{Book: "GAL", Chapter: 2, Verse: 20, Preview: "내가 그리스도와 함께 십자가에 못 박혔나니 그런즉 이제는 내가 사는 것이 아니요 오직 내 안에 그리스도께서 사시는 것이라"},
	{Book: "GAL", Chapter: 5, Verse: 22, Preview: "오직 성령의 열매는 사랑과 희락과 화평과 오래 참음과 자비와 양선과 충성과"},
	{Book: "GAL", Chapter: 6, Verse: 9, Preview: "우리가 선을 행하되 낙심하지 말지니 포기하지 아니하면 때가 이르매 거두리라"},
	{Book: "EPH", Chapter: 2, Verse: 8, Preview: "너희는 그 은혜에 의하여 믿음으로 말미암아 구원을 받았으니 이것은 너희에게서 난 것이 아니요 하나님의 선물이라"},
	{Book: "EPH", Chapter: 3, Verse: 20, Preview: "우리 가운데서 역사하시는 능력대로 우리가 구하거나 생각하는 모든 것에 더 넘치도록 능히 하실 이에게"},
	{Book: "EPH", Chapter: 6, Verse: 10, Preview: "끝으로 너희가 주 안에서와 그 힘의 능력으로 강건하여지고"},
	{Book: "PHP", Chapter: 2, Verse: 3, Preview: "아무 일에든지 다툼이나 허영으로 하지 말고 오직 겸손한 마음으로 각각 자기보다 남을 낫게 여기고"},
	{Book: "PHP", Chapter: 4, Verse: 4, Preview: "주 안에서 항상 기뻐하라 내가 다시 말하노니 기뻐하라"},
	{Book: "PHP", Chapter: 4, Verse: 6, Preview: "아무 것도 염려하지 말고 다만 모든 일에 기도와 간구로 너희 구할 것을 감사함으로 하나님께 아뢰라"},
	{Book: "PHP", Chapter: 4, Verse: 7, Preview: "그리하면 모든 지각에 뛰어난 하나님의 평강이 그리스도 예수 안에서 너희 마음과 생각을 지키시리라"},
	{Book: "PHP", Chapter: 4, Verse: 13, Preview: "내게 능력 주시는 자 안에서 내가 모든 것을 할 수 있느니라"},
	{Book: "COL", Chapter: 3, Verse: 23, Preview: "무슨 일을 하든지 마음을 다하여 주께 하듯 하고 사람에게 하듯 하지 말라"},
	{Book: "1TH", Chapter: 5, Verse: 16, Preview: "항상 기뻐하라"},
	{Book: "1TH", Chapter: 5, Verse: 17, Preview: "쉬지 말고 기도하라"},
	{Book: "1TH", Chapter: 5, Verse: 18, Preview: "범사에 감사하라 이것이 그리스도 예수 안에서 너희를 향하신 하나님의 뜻이니라"},
	{Book: "2TI", Chapter: 1, Verse: 7, Preview: "하나님이 우리에게 주신 것은 두려워하는 마음이 아니요 오직 능력과 사랑과 절제하는 마음이니"},
	{Book: "2TI", Chapter: 3, Verse: 16, Preview: "모든 성경은 하나님의 감동으로 된 것으로 교훈과 책망과 바르게 함과 의로 교육하기에 유익하니"},
	{Book: "HEB", Chapter: 4, Verse: 12, Preview: "하나님의 말씀은 살아 있고 활력이 있어 좌우에 날선 어떤 검보다도 예리하여"},
	{Book: "HEB", Chapter: 11, Verse: 1, Preview: "믿음은 바라는 것들의 실상이요 보이지 않는 것들의 증거니"},
	{Book: "HEB", Chapter: 12, Verse: 1, Preview: "이러므로 우리에게 구름 같이 둘러싼 허다한 증인들이 있으니 모든 무거운 것과 얽매이기 쉬운 죄를 벗어 버리고"},
	{Book: "HEB", Chapter: 12, Verse: 2, Preview: "믿음의 주요 또 온전하게 하시는 이인 예수를 바라보자"},
	{Book: "HEB", Chapter: 13, Verse: 5, Preview: "돈을 사랑하지 말고 있는 바를 족한 줄로 알라 그가 친히 말씀하시기를 내가 결코 너희를 버리지 아니하고 너희를 떠나지 아니하리라 하셨느니라"},
	{Book: "HEB", Chapter: 13, Verse: 8, Preview: "예수 그리스도는 어제나 오늘이나 영원토록 동일하시니라"},
	{Book: "JAS", Chapter: 1, Verse: 2, Preview: "내 형제들아 너희가 여러 가지 시험을 당하거든 온전히 기쁘게 여기라"},
	{Book: "JAS", Chapter: 1, Verse: 5, Preview: "너희 중에 누구든지 지혜가 부족하거든 모든 사람에게 후히 주시고 꾸짖지 아니하시는 하나님께 구하라 그리하면 주시리라"},
	{Book: "JAS", Chapter: 4, Verse: 8, Preview: "하나님을 가까이하라 그리하면 너희를 가까이하시리라"},
	{Book: "1PE", Chapter: 5, Verse: 7, Preview: "너희 염려를 다 주께 맡기라 이는 그가 너희를 돌보심이라"},
	{Book: "1JN", Chapter: 1, Verse: 9, Preview: "만일 우리가 우리 죄를 자백하면 그는 미쁘시고 의로우사 우리 죄를 사하시며 우리를 모든 불의에서 깨끗하게 하실 것이요"},
	{Book: "1JN", Chapter: 4, Verse: 8, Preview: "사랑하지 아니하는 자는 하나님을 알지 못하나니 이는 하나님은 사랑이심이라"},
	{Book: "1JN", Chapter: 4, Verse: 18, Preview: "사랑 안에 두려움이 없고 온전한 사랑이 두려움을 내쫓나니"},
	{Book: "1JN", Chapter: 4, Verse: 19, Preview: "우리가 사랑함은 그가 먼저 우리를 사랑하셨음이라"},
	{Book: "REV", Chapter: 3, Verse: 20, Preview: "볼지어다 내가 문 밖에 서서 두드리노니 누구든지 내 음성을 듣고 문을 열면 내가 그에게로 들어가 그와 더불어 먹고 그는 나와 더불어 먹으리라"},
	{Book: "REV", Chapter: 21, Verse: 4, Preview: "모든 눈물을 그 눈에서 닦아 주시니 다시는 사망이 없고 애통하는 것이나 곡하는 것이나 아픈 것이 다시 있지 아니하리니"},
	{Book: "REV", Chapter: 22, Verse: 13, Preview: "나는 알파와 오메가요 처음과 마지막이요 시작과 마침이라"},
	{Book: "MIC", Chapter: 6, Verse: 8, Preview: "사람아 주께서 선한 것이 무엇임을 네게 보이셨나니 여호와께서 네게 구하시는 것은 오직 정의를 행하며 인자를 사랑하며 겸손하게 네 하나님과 함께 행하는 것이 아니냐"},
	{Book: "DAN", Chapter: 3, Verse: 17, Preview: "만일 그럴 것이면 우리가 섬기는 하나님이 우리를 풀무불 가운데에서 능히 건져내시겠고"},
	{Book: "NEH", Chapter: 8, Verse: 10, Preview: "여호와를 기뻐하는 것이 너희의 힘이니라"},
	{Book: "LUK", Chapter: 1, Verse: 37, Preview: "대저 하나님의 모든 말씀은 능하지 못하심이 없느니라"},
	{Book: "LUK", Chapter: 6, Verse: 38, Preview: "주라 그리하면 너희에게 줄 것이니 곧 후히 되어 누르고 흔들어 넘치도록 하여 너희에게 안겨 주리라"},
	{Book: "LUK", Chapter: 11, Verse: 9, Preview: "구하라 그리하면 너희에게 주실 것이요 찾으라 그리하면 찾아낼 것이요"},
	{Book: "MRK", Chapter: 10, Verse: 27, Preview: "사람으로는 할 수 없으되 하나님으로는 그렇지 아니하니 하나님은 다 하실 수 있느니라"},
	{Book: "MRK", Chapter: 11, Verse: 24, Preview: "무엇이든지 기도하고 구하는 것은 받은 줄로 믿으라 그리하면 너희에게 그대로 되리라"},
}

// DailyVerse picks the entry for the calendar day of t. The same day always
// yields the same verse.
func DailyVerse(t time.Time) DailyVerseEntry {
	seed := t.Year()*10000 + int(t.Month())*100 + t.Day()
	return dailyVerses[seed%len(dailyVerses)]
}
